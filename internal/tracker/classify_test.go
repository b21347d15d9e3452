package tracker

import (
	"testing"
	"time"

	"github.com/daybook-app/daybook/internal/models"
)

func utcWindow(t *testing.T, now string) DayWindow {
	t.Helper()
	w, err := ComputeWindow("UTC", mustParse(t, now))
	if err != nil {
		t.Fatalf("ComputeWindow() error = %v", err)
	}
	return w
}

func logAt(t *testing.T, id int64, createdAt string, value *int64) models.LogEntry {
	t.Helper()
	ts := mustParse(t, createdAt)
	return models.LogEntry{LogID: id, ItemID: 1, CreatedAt: ts, UpdatedAt: ts, Value: value}
}

func TestClassify(t *testing.T) {
	window := utcWindow(t, "2024-03-10T15:00:00Z")

	tests := []struct {
		name      string
		logs      []models.LogEntry
		wantYtd   int64 // expected LogID, 0 = absent
		wantToday int64
	}{
		{
			name:      "empty input",
			logs:      nil,
			wantYtd:   0,
			wantToday: 0,
		},
		{
			name: "one log each day",
			logs: []models.LogEntry{
				logAt(t, 1, "2024-03-09T10:00:00Z", nil),
				logAt(t, 2, "2024-03-10T12:00:00Z", nil),
			},
			wantYtd:   1,
			wantToday: 2,
		},
		{
			name: "log before yesterday is dropped",
			logs: []models.LogEntry{
				logAt(t, 1, "2024-03-08T23:59:59Z", nil),
				logAt(t, 2, "2024-03-10T01:00:00Z", nil),
			},
			wantYtd:   0,
			wantToday: 2,
		},
		{
			name: "boundary instants: ytd start inclusive, today start belongs to today",
			logs: []models.LogEntry{
				logAt(t, 1, "2024-03-09T00:00:00Z", nil),
				logAt(t, 2, "2024-03-10T00:00:00Z", nil),
			},
			wantYtd:   1,
			wantToday: 2,
		},
		{
			name: "duplicate rows in a slot: last in iteration order wins",
			logs: []models.LogEntry{
				logAt(t, 1, "2024-03-10T08:00:00Z", nil),
				logAt(t, 2, "2024-03-10T09:00:00Z", nil),
				logAt(t, 3, "2024-03-09T07:00:00Z", nil),
				logAt(t, 4, "2024-03-09T08:00:00Z", nil),
			},
			wantYtd:   4,
			wantToday: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Classify(tt.logs, window)

			checkSlot := func(name string, got *models.LogEntry, want int64) {
				t.Helper()
				if want == 0 {
					if got != nil {
						t.Errorf("%s = log %d, want absent", name, got.LogID)
					}
					return
				}
				if got == nil {
					t.Errorf("%s absent, want log %d", name, want)
				} else if got.LogID != want {
					t.Errorf("%s = log %d, want log %d", name, got.LogID, want)
				}
			}
			checkSlot("Ytd", b.Ytd, tt.wantYtd)
			checkSlot("Today", b.Today, tt.wantToday)
		})
	}
}

// Every log at or after YtdStart must land in exactly one slot or be the
// loser of a same-slot tie; none may fall through both interval checks.
func TestClassifyCompleteness(t *testing.T) {
	window := utcWindow(t, "2024-03-10T15:00:00Z")

	var logs []models.LogEntry
	start := window.YtdStart
	for i := 0; i < 48; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		if ts.After(mustParse(t, "2024-03-10T15:00:00Z")) {
			break
		}
		logs = append(logs, models.LogEntry{LogID: int64(i + 1), ItemID: 1, CreatedAt: ts, UpdatedAt: ts})
	}

	for i := range logs {
		b := Classify(logs[i:i+1], window)
		if b.Ytd == nil && b.Today == nil {
			t.Errorf("log at %v was silently dropped", logs[i].CreatedAt)
		}
		if b.Ytd != nil && b.Today != nil {
			t.Errorf("log at %v landed in both slots", logs[i].CreatedAt)
		}
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	window := utcWindow(t, "2024-03-10T15:00:00Z")
	v := int64(5)
	logs := []models.LogEntry{logAt(t, 1, "2024-03-10T08:00:00Z", &v)}

	b := Classify(logs, window)
	if b.Today == nil {
		t.Fatal("expected today slot")
	}

	// Slot entries are copies of the input structs.
	b.Today.LogID = 42
	if logs[0].LogID != 1 {
		t.Errorf("input slice mutated: LogID = %d", logs[0].LogID)
	}
}
