package models

import "time"

// User owns items. UserID is opaque; in the single-user CLI it is generated
// on first use, but nothing in the core assumes a particular format.
type User struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
