package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetTotal(t *testing.T) {
	items := []LineItem{
		{Description: "bags of cement", Quantity: 50, Unit: "bag", UnitPrice: 30},
		{Description: "floor tile", Quantity: 100, Unit: "m²", UnitPrice: 45},
	}
	assert.Equal(t, 6000.0, BudgetTotal(items))
}

func TestBudgetTotal_NoItems(t *testing.T) {
	assert.Equal(t, 0.0, BudgetTotal(nil))
	assert.Equal(t, 0.0, BudgetTotal([]LineItem{}))
}

func TestProspectID(t *testing.T) {
	at := time.Date(2026, 3, 10, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "Silva-140509", ProspectID("Silva", at))
}

func TestWorkerRole_Valid(t *testing.T) {
	for _, r := range WorkerRoles {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, WorkerRole("Plumber").Valid())
	assert.False(t, WorkerRole("").Valid())
}

func TestTask_DecodeDurationForms(t *testing.T) {
	var tasks []Task
	raw := `[
		{"phase":"Foundation","task":"Excavation","duration_days":3,"dependency":null},
		{"phase":"Foundation","task":"Footings","duration_days":"2.5","dependency":"Excavation"}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &tasks))
	require.Len(t, tasks, 2)

	assert.Equal(t, Days(3), tasks[0].DurationDays)
	assert.Nil(t, tasks[0].Dependency)
	assert.Equal(t, "", tasks[0].DependsOn())

	assert.Equal(t, Days(2.5), tasks[1].DurationDays)
	assert.Equal(t, "Excavation", tasks[1].DependsOn())
	assert.Equal(t, "2.5", tasks[1].DurationDays.String())
}

func TestTask_DecodeBadDuration(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"task":"x","duration_days":"soon"}`), &task)
	assert.Error(t, err)
}

func TestTask_DecodeNonFiniteDuration(t *testing.T) {
	for _, raw := range []string{`"NaN"`, `"Inf"`, `"-Inf"`, `"+Infinity"`} {
		var task Task
		err := json.Unmarshal([]byte(`{"task":"x","duration_days":`+raw+`}`), &task)
		assert.Error(t, err, raw)
	}
}

func TestTask_DependsOnNullString(t *testing.T) {
	dep := "null"
	assert.Equal(t, "", Task{Dependency: &dep}.DependsOn())
}
