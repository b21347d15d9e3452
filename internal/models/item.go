package models

import "time"

// ItemType determines how logs against an item are interpreted.
type ItemType string

const (
	// ItemTime records a moment; the log's timestamp is the reported value.
	ItemTime ItemType = "time"
	// ItemDuration records elapsed seconds and requires a value on creation.
	ItemDuration ItemType = "duration"
	// ItemAmount records a cumulative count, defaulting to 1 on the first log of a day.
	ItemAmount ItemType = "amount"
	// ItemConsistency records a boolean done-marker for the day.
	ItemConsistency ItemType = "consistency"
)

// ItemTypes is the closed set of valid item types.
var ItemTypes = []ItemType{ItemTime, ItemDuration, ItemAmount, ItemConsistency}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTime, ItemDuration, ItemAmount, ItemConsistency:
		return true
	}
	return false
}

// Direction states whether a larger or smaller value is favorable for an item.
// It is meaningful for time, duration, and amount items and ignored for
// consistency items.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
	// DirectionNone is stored for items without a directional preference.
	DirectionNone Direction = ""
)

// Valid reports whether d is a known direction (including none).
func (d Direction) Valid() bool {
	return d == DirectionIncrease || d == DirectionDecrease || d == DirectionNone
}

// TrackedItem is a user-defined metric. Type and owner are immutable after
// creation; the name is a mutable display label, unique per owner
// (case-insensitive).
type TrackedItem struct {
	ItemID    int64      `json:"item_id"`
	OwnerID   string     `json:"owner_id"`
	Type      ItemType   `json:"item_type"`
	Direction Direction  `json:"direction,omitempty"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Deleted reports whether the item has been soft-deleted. Deleted items are
// excluded from active views but their logs are retained.
func (i TrackedItem) Deleted() bool {
	return i.DeletedAt != nil
}
