package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a complaint. There is no state machine:
// any status may transition to any other at any time.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusResolved Status = "Resolved"
)

// Valid reports whether st is a known status.
func (st Status) Valid() bool {
	return st == StatusPending || st == StatusResolved
}

// Priority is the urgency level of a complaint, used for sorting and display only.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Complaint is a single maintenance-issue report. Once created, only Status
// is ever mutated; every other field is immutable. StudentName and StudentRoom
// are copies taken from the session at submission time and are never
// reattributed afterwards.
type Complaint struct {
	ID          string    `json:"id"`
	StudentName string    `json:"studentName"`
	StudentRoom string    `json:"studentRoom"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"` // data-URI or "asset:" reference
	Status      Status    `json:"status"`
	Date        string    `json:"date"`      // human-readable, display only
	CreatedAt   time.Time `json:"createdAt"` // authoritative ordering timestamp
}

// EnsureID generates a random UUID for the complaint if it does not have one yet.
// Random IDs avoid the collision risk of wall-clock based identifiers.
func (c *Complaint) EnsureID() {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
}
