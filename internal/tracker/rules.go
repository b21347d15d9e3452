package tracker

import (
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/models"
)

// itemRules bundles the per-type behaviors: how a first-of-day log is
// constructed and how the two day buckets compare. Adding a new item type
// means adding one implementation here and registering it in rulesByType;
// nothing else branches on the type.
type itemRules interface {
	resolveInsert(supplied *int64, now time.Time) (LogWrite, error)
	delta(direction models.Direction, b Buckets) DeltaResult
}

var rulesByType = map[models.ItemType]itemRules{
	models.ItemTime:        timeRules{},
	models.ItemDuration:    durationRules{},
	models.ItemAmount:      amountRules{},
	models.ItemConsistency: consistencyRules{},
}

// timeRules: the row itself is the signal, CreatedAt is the reported time.
type timeRules struct{}

func (timeRules) resolveInsert(_ *int64, now time.Time) (LogWrite, error) {
	return insertOp(now, nil), nil
}

func (timeRules) delta(_ models.Direction, b Buckets) DeltaResult {
	if b.Ytd == nil && b.Today == nil {
		return DeltaResult{Kind: DeltaUnavailable}
	}
	// Presentational comparison only: the caller shows both clock times.
	return DeltaResult{Kind: DeltaClock}
}

// durationRules: value is elapsed seconds, required on creation.
type durationRules struct{}

func (durationRules) resolveInsert(supplied *int64, now time.Time) (LogWrite, error) {
	if supplied == nil {
		return LogWrite{}, fmt.Errorf("%w: duration requires an explicit seconds value on creation", ErrMissingValue)
	}
	return insertOp(now, copyValue(supplied)), nil
}

func (durationRules) delta(direction models.Direction, b Buckets) DeltaResult {
	return signedDelta(direction, b)
}

// amountRules: value is a cumulative count; the first tap of a day defaults
// to 1.
type amountRules struct{}

func (amountRules) resolveInsert(supplied *int64, now time.Time) (LogWrite, error) {
	if supplied == nil {
		one := int64(1)
		return insertOp(now, &one), nil
	}
	return insertOp(now, copyValue(supplied)), nil
}

func (amountRules) delta(direction models.Direction, b Buckets) DeltaResult {
	return signedDelta(direction, b)
}

// consistencyRules: value is fixed at 1; the row is a done-marker.
type consistencyRules struct{}

func (consistencyRules) resolveInsert(_ *int64, now time.Time) (LogWrite, error) {
	one := int64(1)
	return insertOp(now, &one), nil
}

func (consistencyRules) delta(_ models.Direction, b Buckets) DeltaResult {
	if b.Ytd == nil && b.Today == nil {
		return DeltaResult{Kind: DeltaUnavailable}
	}
	// Presence comparison only. Streak logic may hang off this later.
	return DeltaResult{Kind: DeltaNeutral}
}

// signedDelta computes today - yesterday for value-carrying types. Favorable
// means the sign agrees with the item's direction; a flat day (zero delta)
// counts as favorable either way.
func signedDelta(direction models.Direction, b Buckets) DeltaResult {
	if b.Ytd == nil || b.Today == nil || b.Ytd.Value == nil || b.Today.Value == nil {
		return DeltaResult{Kind: DeltaUnavailable}
	}
	magnitude := *b.Today.Value - *b.Ytd.Value
	favorable := magnitude >= 0
	if direction == models.DirectionDecrease {
		favorable = magnitude <= 0
	}
	return DeltaResult{
		Kind:      DeltaSigned,
		Magnitude: magnitude,
		Favorable: favorable,
	}
}
