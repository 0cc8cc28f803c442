package models

import "time"

// ContentStats is a point-in-time snapshot of stored content totals
type ContentStats struct {
	Users       int       `json:"users"`
	Posts       int       `json:"posts"`
	Comments    int       `json:"comments"`
	CollectedAt time.Time `json:"collected_at"`
}
