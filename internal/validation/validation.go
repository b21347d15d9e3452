package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/daybook-app/daybook/internal/models"
)

// MaxItemNameLength caps display labels so views stay readable.
const MaxItemNameLength = 64

// ValidateItemName checks that a display label is non-blank and within the
// length cap. Uniqueness per owner is enforced by the storage layer.
func ValidateItemName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("item name cannot be empty")
	}
	if len(trimmed) > MaxItemNameLength {
		return fmt.Errorf("item name exceeds %d characters", MaxItemNameLength)
	}
	return nil
}

// ParseItemType parses a user-supplied type string against the closed set.
func ParseItemType(s string) (models.ItemType, error) {
	t := models.ItemType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown item type %q (expected one of: time, duration, amount, consistency)", s)
	}
	return t, nil
}

// ParseDirection parses a user-supplied direction. Empty means no
// directional preference.
func ParseDirection(s string) (models.Direction, error) {
	d := models.Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown direction %q (expected increase or decrease)", s)
	}
	return d, nil
}

// ValidateTimezone checks whether the name resolves to a known IANA zone.
// "Local" and empty mean the system zone and are always valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
