package tracker

import (
	"fmt"

	"github.com/daybook-app/daybook/internal/models"
)

// DeltaKind tags a delta result.
type DeltaKind string

const (
	// DeltaUnavailable means one or both days lack a usable value.
	DeltaUnavailable DeltaKind = "unavailable"
	// DeltaNeutral is a presence-only comparison (consistency items).
	DeltaNeutral DeltaKind = "neutral"
	// DeltaSigned carries a magnitude and a favorable classification.
	DeltaSigned DeltaKind = "signed"
	// DeltaClock means the presenter should show both logged clock times
	// side by side (time items); no favorable classification is computed.
	DeltaClock DeltaKind = "clock"
)

// DeltaResult is the outcome of comparing yesterday's and today's buckets.
// Magnitude and Favorable are meaningful only when Kind is DeltaSigned.
// Magnitude keeps its sign (today minus yesterday); for duration items the
// presenter shows the absolute value as HH:MM and conveys the sign through
// Favorable alone.
type DeltaResult struct {
	Kind      DeltaKind
	Magnitude int64
	Favorable bool
}

// ComputeDelta compares an item's two day buckets under its type and
// direction. Dispatches through the closed per-type rule table; an unknown
// type is ErrUnsupportedItemType.
func ComputeDelta(itemType models.ItemType, direction models.Direction, b Buckets) (DeltaResult, error) {
	rules, ok := rulesByType[itemType]
	if !ok {
		return DeltaResult{}, fmt.Errorf("%w: %q", ErrUnsupportedItemType, itemType)
	}
	return rules.delta(direction, b), nil
}
