package domain

import "time"

// Subaccount is a per-user grouping record used to scope transaction
// queries for the dashboard.
type Subaccount struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}
