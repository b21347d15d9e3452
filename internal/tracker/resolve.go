package tracker

import (
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/models"
)

// WriteOp tags a resolved log write.
type WriteOp string

const (
	OpInsert WriteOp = "insert"
	OpUpdate WriteOp = "update"
)

// LogWrite is the storage operation a log call resolves to. For inserts,
// CreatedAt/UpdatedAt/Value form the new row; for updates, LogID identifies
// the row and UpdatedAt/Value are the mutation.
type LogWrite struct {
	Op        WriteOp
	LogID     int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Value     *int64
}

// ResolveLogWrite decides whether a log call becomes an insert or an update,
// applying per-type default and validation rules. It is pure: the caller
// executes the returned operation against storage and is responsible for the
// one-row-per-day invariant by passing existingLogID whenever today's bucket
// already holds an entry (see Classify).
//
// When existingLogID is set a value is always required, whatever the type.
// For amount items the caller supplies the already-incremented value it read
// from today's bucket; two concurrent increments on the same item and day can
// therefore lose an update. At most one writer per item per day is assumed.
//
// direction never affects the write; it is accepted so the resolver and the
// delta engine share one calling shape.
func ResolveLogWrite(itemType models.ItemType, direction models.Direction, existingLogID *int64, supplied *int64, now time.Time) (LogWrite, error) {
	rules, ok := rulesByType[itemType]
	if !ok {
		return LogWrite{}, fmt.Errorf("%w: %q", ErrUnsupportedItemType, itemType)
	}

	if existingLogID != nil {
		if supplied == nil {
			return LogWrite{}, fmt.Errorf("%w: updating a log requires a value", ErrMissingValue)
		}
		return LogWrite{
			Op:        OpUpdate,
			LogID:     *existingLogID,
			UpdatedAt: now,
			Value:     copyValue(supplied),
		}, nil
	}

	return rules.resolveInsert(supplied, now)
}

func copyValue(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func insertOp(now time.Time, value *int64) LogWrite {
	return LogWrite{
		Op:        OpInsert,
		CreatedAt: now,
		UpdatedAt: now,
		Value:     value,
	}
}
