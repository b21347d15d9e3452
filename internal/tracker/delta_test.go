package tracker

import (
	"errors"
	"testing"

	"github.com/daybook-app/daybook/internal/models"
)

func bucketPair(t *testing.T, ytdValue, todayValue *int64) Buckets {
	t.Helper()
	ytd := logAt(t, 1, "2024-03-09T10:00:00Z", ytdValue)
	today := logAt(t, 2, "2024-03-10T12:00:00Z", todayValue)
	return Buckets{Ytd: &ytd, Today: &today}
}

func TestComputeDeltaSigned(t *testing.T) {
	tests := []struct {
		name          string
		itemType      models.ItemType
		direction     models.Direction
		ytd, today    int64
		wantMagnitude int64
		wantFavorable bool
	}{
		{
			name:          "duration increase improved",
			itemType:      models.ItemDuration,
			direction:     models.DirectionIncrease,
			ytd:           1800,
			today:         2400,
			wantMagnitude: 600,
			wantFavorable: true,
		},
		{
			name:          "duration increase regressed",
			itemType:      models.ItemDuration,
			direction:     models.DirectionIncrease,
			ytd:           2400,
			today:         1800,
			wantMagnitude: -600,
			wantFavorable: false,
		},
		{
			name:          "amount decrease went up",
			itemType:      models.ItemAmount,
			direction:     models.DirectionDecrease,
			ytd:           10,
			today:         12,
			wantMagnitude: 2,
			wantFavorable: false,
		},
		{
			name:          "amount decrease went down",
			itemType:      models.ItemAmount,
			direction:     models.DirectionDecrease,
			ytd:           12,
			today:         10,
			wantMagnitude: -2,
			wantFavorable: true,
		},
		{
			name:          "flat day counts as favorable for increase",
			itemType:      models.ItemAmount,
			direction:     models.DirectionIncrease,
			ytd:           5,
			today:         5,
			wantMagnitude: 0,
			wantFavorable: true,
		},
		{
			name:          "flat day counts as favorable for decrease",
			itemType:      models.ItemAmount,
			direction:     models.DirectionDecrease,
			ytd:           5,
			today:         5,
			wantMagnitude: 0,
			wantFavorable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bucketPair(t, int64p(tt.ytd), int64p(tt.today))
			got, err := ComputeDelta(tt.itemType, tt.direction, b)
			if err != nil {
				t.Fatalf("ComputeDelta() error = %v", err)
			}
			if got.Kind != DeltaSigned {
				t.Fatalf("Kind = %q, want %q", got.Kind, DeltaSigned)
			}
			if got.Magnitude != tt.wantMagnitude {
				t.Errorf("Magnitude = %d, want %d", got.Magnitude, tt.wantMagnitude)
			}
			if got.Favorable != tt.wantFavorable {
				t.Errorf("Favorable = %v, want %v", got.Favorable, tt.wantFavorable)
			}
		})
	}
}

func TestComputeDeltaUnavailable(t *testing.T) {
	tests := []struct {
		name     string
		itemType models.ItemType
		buckets  Buckets
	}{
		{name: "duration missing yesterday", itemType: models.ItemDuration, buckets: func() Buckets {
			today := logAtValue(2400)
			return Buckets{Today: &today}
		}()},
		{name: "amount missing today", itemType: models.ItemAmount, buckets: func() Buckets {
			ytd := logAtValue(10)
			return Buckets{Ytd: &ytd}
		}()},
		{name: "duration row present but value absent", itemType: models.ItemDuration, buckets: func() Buckets {
			ytd, today := logAtValue(1800), models.LogEntry{LogID: 2}
			return Buckets{Ytd: &ytd, Today: &today}
		}()},
		{name: "consistency with neither day", itemType: models.ItemConsistency, buckets: Buckets{}},
		{name: "time with neither day", itemType: models.ItemTime, buckets: Buckets{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeDelta(tt.itemType, models.DirectionIncrease, tt.buckets)
			if err != nil {
				t.Fatalf("ComputeDelta() error = %v", err)
			}
			if got.Kind != DeltaUnavailable {
				t.Errorf("Kind = %q, want %q", got.Kind, DeltaUnavailable)
			}
		})
	}
}

func TestComputeDeltaPresenceKinds(t *testing.T) {
	one := int64(1)
	mark := models.LogEntry{LogID: 1, Value: &one}

	got, err := ComputeDelta(models.ItemConsistency, models.DirectionNone, Buckets{Today: &mark})
	if err != nil {
		t.Fatalf("ComputeDelta() error = %v", err)
	}
	if got.Kind != DeltaNeutral {
		t.Errorf("consistency Kind = %q, want %q", got.Kind, DeltaNeutral)
	}

	stamp := models.LogEntry{LogID: 2}
	got, err = ComputeDelta(models.ItemTime, models.DirectionIncrease, Buckets{Ytd: &stamp})
	if err != nil {
		t.Fatalf("ComputeDelta() error = %v", err)
	}
	if got.Kind != DeltaClock {
		t.Errorf("time Kind = %q, want %q", got.Kind, DeltaClock)
	}
}

func TestComputeDeltaUnsupportedType(t *testing.T) {
	_, err := ComputeDelta(models.ItemType("calories"), models.DirectionIncrease, Buckets{})
	if !errors.Is(err, ErrUnsupportedItemType) {
		t.Errorf("ComputeDelta() error = %v, want ErrUnsupportedItemType", err)
	}
}

// Scenario from the duration display path: 1800s yesterday, 2400s today,
// increase direction, shown as "00:10".
func TestComputeDeltaDurationDisplay(t *testing.T) {
	b := bucketPair(t, int64p(1800), int64p(2400))
	got, err := ComputeDelta(models.ItemDuration, models.DirectionIncrease, b)
	if err != nil {
		t.Fatalf("ComputeDelta() error = %v", err)
	}
	if !got.Favorable || got.Magnitude != 600 {
		t.Fatalf("got %+v, want favorable +600", got)
	}

	magnitude := got.Magnitude
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if s := SecondsToClock(magnitude); s != "00:10" {
		t.Errorf("SecondsToClock(600) = %q, want \"00:10\"", s)
	}
}

func logAtValue(v int64) models.LogEntry {
	return models.LogEntry{LogID: 1, ItemID: 1, Value: &v}
}
