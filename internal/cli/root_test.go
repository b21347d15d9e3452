package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/tracker"
)

func int64p(v int64) *int64 { return &v }

func entryWith(value *int64, createdAt time.Time) *models.LogEntry {
	return &models.LogEntry{LogID: 1, ItemID: 1, CreatedAt: createdAt, UpdatedAt: createdAt, Value: value}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		itemType models.ItemType
		raw      string
		want     *int64
		wantErr  bool
	}{
		{"empty means absent", models.ItemDuration, "", nil, false},
		{"duration clock", models.ItemDuration, "01:30", int64p(5400), false},
		{"duration seconds", models.ItemDuration, "90", int64p(90), false},
		{"duration garbage", models.ItemDuration, "soon", nil, true},
		{"duration negative", models.ItemDuration, "-5", nil, true},
		{"amount count", models.ItemAmount, "5", int64p(5), false},
		{"amount negative", models.ItemAmount, "-1", nil, true},
		{"time rejects value", models.ItemTime, "5", nil, true},
		{"consistency rejects value", models.ItemConsistency, "1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.itemType, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got value %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("got %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)

	if got := FormatValue(models.ItemDuration, nil, "UTC"); !strings.Contains(got, "—") {
		t.Errorf("absent entry should render a dash, got %q", got)
	}
	if got := FormatValue(models.ItemDuration, entryWith(int64p(3600), createdAt), "UTC"); !strings.Contains(got, "01:00") {
		t.Errorf("duration should render as clock, got %q", got)
	}
	if got := FormatValue(models.ItemAmount, entryWith(int64p(5), createdAt), "UTC"); !strings.Contains(got, "5") {
		t.Errorf("amount should render the count, got %q", got)
	}
	if got := FormatValue(models.ItemConsistency, entryWith(int64p(1), createdAt), "UTC"); !strings.Contains(got, "done") {
		t.Errorf("consistency should render done, got %q", got)
	}
	if got := FormatValue(models.ItemTime, entryWith(nil, createdAt), "UTC"); !strings.Contains(got, "14:30") {
		t.Errorf("time should render the local clock time, got %q", got)
	}
}

func TestFormatDelta(t *testing.T) {
	ytdAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	todayAt := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("signed favorable", func(t *testing.T) {
		b := tracker.Buckets{
			Ytd:   entryWith(int64p(1800), ytdAt),
			Today: entryWith(int64p(2400), todayAt),
		}
		got := FormatDelta(models.ItemDuration, models.DirectionIncrease, b)
		if !strings.Contains(got, "+00:10") {
			t.Errorf("expected +00:10, got %q", got)
		}
	})

	t.Run("signed unfavorable", func(t *testing.T) {
		b := tracker.Buckets{
			Ytd:   entryWith(int64p(10), ytdAt),
			Today: entryWith(int64p(12), todayAt),
		}
		got := FormatDelta(models.ItemAmount, models.DirectionDecrease, b)
		if !strings.Contains(got, "+2") {
			t.Errorf("expected +2, got %q", got)
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		b := tracker.Buckets{Today: entryWith(int64p(5), todayAt)}
		got := FormatDelta(models.ItemAmount, models.DirectionIncrease, b)
		if !strings.Contains(got, "—") {
			t.Errorf("expected dash, got %q", got)
		}
	})

	t.Run("consistency kept up", func(t *testing.T) {
		b := tracker.Buckets{
			Ytd:   entryWith(int64p(1), ytdAt),
			Today: entryWith(int64p(1), todayAt),
		}
		got := FormatDelta(models.ItemConsistency, models.DirectionNone, b)
		if !strings.Contains(got, "kept up") {
			t.Errorf("expected kept up, got %q", got)
		}
	})

	t.Run("time compares clocks elsewhere", func(t *testing.T) {
		b := tracker.Buckets{
			Ytd:   entryWith(nil, ytdAt),
			Today: entryWith(nil, todayAt),
		}
		got := FormatDelta(models.ItemTime, models.DirectionNone, b)
		if !strings.Contains(got, "see times") {
			t.Errorf("expected see times, got %q", got)
		}
	})
}

func TestFormatItemType(t *testing.T) {
	item := models.TrackedItem{Type: models.ItemDuration, Direction: models.DirectionIncrease}
	if got := FormatItemType(item); got != "duration ↑" {
		t.Errorf("got %q", got)
	}
	item = models.TrackedItem{Type: models.ItemConsistency, Direction: models.DirectionNone}
	if got := FormatItemType(item); got != "consistency" {
		t.Errorf("got %q", got)
	}
}
