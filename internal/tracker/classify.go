package tracker

import "github.com/daybook-app/daybook/internal/models"

// Buckets holds at most one log per day slot. A nil slot means no row exists
// for that day.
type Buckets struct {
	Ytd   *models.LogEntry
	Today *models.LogEntry
}

// Classify partitions an item's logs into yesterday/today slots against the
// given window. Logs created before YtdStart are dropped. If several logs
// land in the same slot the last one encountered wins, so callers should pass
// logs in ascending CreatedAt order to make the newest entry the effective
// winner; one row per day is the expected shape, this is only a fallback.
// The input slice is not mutated.
func Classify(logs []models.LogEntry, w DayWindow) Buckets {
	var b Buckets
	for i := range logs {
		log := logs[i]
		switch {
		case !log.CreatedAt.Before(w.TodayStart):
			b.Today = &log
		case !log.CreatedAt.Before(w.YtdStart) && log.CreatedAt.Before(w.YtdEnd):
			b.Ytd = &log
		}
	}
	return b
}
