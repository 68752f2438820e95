package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Task is one step of an AI generated construction schedule.
type Task struct {
	Phase        string  `json:"phase"`
	Task         string  `json:"task"`
	DurationDays Days    `json:"duration_days"`
	Dependency   *string `json:"dependency"`
}

// DependsOn returns the dependency name, or "" when the task has none.
// Models sometimes spell "no dependency" as the string "null".
func (t Task) DependsOn() string {
	if t.Dependency == nil {
		return ""
	}
	d := strings.TrimSpace(*t.Dependency)
	if strings.EqualFold(d, "null") || strings.EqualFold(d, "none") {
		return ""
	}
	return d
}

// Days accepts either a JSON number or a numeric string.
type Days float64

func (d *Days) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*d = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("duration_days: %q is not a number", s)
	}
	*d = Days(v)
	return nil
}

func (d Days) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(d))
}

func (d Days) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}
