package models

import (
	"fmt"
	"time"
)

type ProjectStatus string

const (
	StatusNegotiating ProjectStatus = "Negotiating"
	StatusInProgress  ProjectStatus = "In Progress"
)

// Prospect is a budget proposal. Once approved it is the active project:
// the same record with Status flipped to StatusInProgress.
type Prospect struct {
	ID      string        `json:"id"`
	Client  string        `json:"client"`
	Project string        `json:"project"`
	Address string        `json:"address"`
	Date    time.Time     `json:"date"`
	Status  ProjectStatus `json:"status"`
	Total   float64       `json:"total"`
}

func (p Prospect) IsActive() bool {
	return p.Status == StatusInProgress
}

// ProspectID builds the identifier from the client name and the creation time
// (seconds resolution).
func ProspectID(client string, at time.Time) string {
	return fmt.Sprintf("%s-%s", client, at.Format("150405"))
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
}

func (li LineItem) Subtotal() float64 {
	return li.Quantity * li.UnitPrice
}

// BudgetTotal sums quantity × unit price over all items; no items yields 0.
func BudgetTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}
