package tracker

import (
	"fmt"
	"time"
)

// DayWindow holds the absolute boundaries of "today" and "yesterday" for one
// request. Yesterday's window is half-open: [YtdStart, YtdEnd). YtdEnd always
// equals TodayStart. Computed per request from the caller's timezone; never
// cached across requests.
type DayWindow struct {
	TodayStart time.Time
	YtdStart   time.Time
	YtdEnd     time.Time
}

// LoadLocation resolves an IANA timezone name. "Local" or empty returns the
// system zone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ComputeWindow returns the day window containing now in the given timezone.
// TodayStart is local midnight converted to an absolute instant. YtdStart is
// one calendar day earlier in local time, not 24 hours, so windows spanning a
// DST transition stay aligned to local midnight (and may be 23h or 25h long).
func ComputeWindow(timezone string, now time.Time) (DayWindow, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return DayWindow{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}

	local := now.In(loc)
	todayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	ytdStart := todayStart.AddDate(0, 0, -1)

	return DayWindow{
		TodayStart: todayStart,
		YtdStart:   ytdStart,
		YtdEnd:     todayStart,
	}, nil
}
