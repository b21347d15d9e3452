package models

import "time"

// LogEntry is one timestamped measurement for an item. CreatedAt is set once
// when the row is first recorded; UpdatedAt moves on every value mutation.
// Value is absent for time items, elapsed seconds for duration items, a
// cumulative count for amount items, and fixed at 1 for consistency items.
type LogEntry struct {
	LogID     int64     `json:"log_id"`
	ItemID    int64     `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Value     *int64    `json:"value,omitempty"`
}

// HasValue reports whether the entry carries a numeric payload.
func (l LogEntry) HasValue() bool {
	return l.Value != nil
}
