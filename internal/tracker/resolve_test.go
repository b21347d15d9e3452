package tracker

import (
	"errors"
	"testing"

	"github.com/daybook-app/daybook/internal/models"
)

func int64p(v int64) *int64 { return &v }

func TestResolveLogWrite(t *testing.T) {
	now := mustParse(t, "2024-03-10T12:00:00Z")

	tests := []struct {
		name      string
		itemType  models.ItemType
		existing  *int64
		supplied  *int64
		wantOp    WriteOp
		wantValue *int64 // nil = no value in body
		wantErr   error
	}{
		{
			name:     "update without value fails regardless of type",
			itemType: models.ItemAmount,
			existing: int64p(7),
			wantErr:  ErrMissingValue,
		},
		{
			name:      "update with value",
			itemType:  models.ItemDuration,
			existing:  int64p(7),
			supplied:  int64p(3600),
			wantOp:    OpUpdate,
			wantValue: int64p(3600),
		},
		{
			name:     "time insert has no value",
			itemType: models.ItemTime,
			wantOp:   OpInsert,
		},
		{
			name:     "time insert ignores a supplied value",
			itemType: models.ItemTime,
			supplied: int64p(42),
			wantOp:   OpInsert,
		},
		{
			name:      "consistency insert pins value to 1",
			itemType:  models.ItemConsistency,
			wantOp:    OpInsert,
			wantValue: int64p(1),
		},
		{
			name:      "consistency insert ignores a supplied value",
			itemType:  models.ItemConsistency,
			supplied:  int64p(5),
			wantOp:    OpInsert,
			wantValue: int64p(1),
		},
		{
			name:      "amount first tap defaults to 1",
			itemType:  models.ItemAmount,
			wantOp:    OpInsert,
			wantValue: int64p(1),
		},
		{
			name:      "amount insert with explicit value",
			itemType:  models.ItemAmount,
			supplied:  int64p(4),
			wantOp:    OpInsert,
			wantValue: int64p(4),
		},
		{
			name:     "duration insert without value fails",
			itemType: models.ItemDuration,
			wantErr:  ErrMissingValue,
		},
		{
			name:      "duration insert with value",
			itemType:  models.ItemDuration,
			supplied:  int64p(1800),
			wantOp:    OpInsert,
			wantValue: int64p(1800),
		},
		{
			name:     "unknown type",
			itemType: models.ItemType("streak"),
			wantErr:  ErrUnsupportedItemType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := ResolveLogWrite(tt.itemType, models.DirectionIncrease, tt.existing, tt.supplied, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveLogWrite() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveLogWrite() error = %v", err)
			}

			if op.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", op.Op, tt.wantOp)
			}
			if tt.wantOp == OpUpdate {
				if op.LogID != *tt.existing {
					t.Errorf("LogID = %d, want %d", op.LogID, *tt.existing)
				}
				if !op.CreatedAt.IsZero() {
					t.Errorf("update must not set CreatedAt, got %v", op.CreatedAt)
				}
			} else {
				if !op.CreatedAt.Equal(now) {
					t.Errorf("CreatedAt = %v, want %v", op.CreatedAt, now)
				}
			}
			if !op.UpdatedAt.Equal(now) {
				t.Errorf("UpdatedAt = %v, want %v", op.UpdatedAt, now)
			}

			switch {
			case tt.wantValue == nil && op.Value != nil:
				t.Errorf("Value = %d, want absent", *op.Value)
			case tt.wantValue != nil && op.Value == nil:
				t.Errorf("Value absent, want %d", *tt.wantValue)
			case tt.wantValue != nil && *op.Value != *tt.wantValue:
				t.Errorf("Value = %d, want %d", *op.Value, *tt.wantValue)
			}
		})
	}
}

// Same inputs must always produce the same operation.
func TestResolveLogWriteDeterministic(t *testing.T) {
	now := mustParse(t, "2024-03-10T12:00:00Z")

	first, err := ResolveLogWrite(models.ItemAmount, models.DirectionDecrease, int64p(3), int64p(9), now)
	if err != nil {
		t.Fatalf("ResolveLogWrite() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ResolveLogWrite(models.ItemAmount, models.DirectionDecrease, int64p(3), int64p(9), now)
		if err != nil {
			t.Fatalf("ResolveLogWrite() error = %v", err)
		}
		if again.Op != first.Op || again.LogID != first.LogID ||
			!again.UpdatedAt.Equal(first.UpdatedAt) || *again.Value != *first.Value {
			t.Fatalf("call %d produced a different operation: %+v vs %+v", i, again, first)
		}
	}
}

// The resolver must copy the supplied value, not alias the caller's pointer.
func TestResolveLogWriteCopiesValue(t *testing.T) {
	now := mustParse(t, "2024-03-10T12:00:00Z")
	supplied := int64p(10)

	op, err := ResolveLogWrite(models.ItemAmount, models.DirectionIncrease, nil, supplied, now)
	if err != nil {
		t.Fatalf("ResolveLogWrite() error = %v", err)
	}

	*supplied = 99
	if *op.Value != 10 {
		t.Errorf("Value = %d after caller mutation, want 10", *op.Value)
	}
}
