package tracker

import (
	"fmt"
	"strconv"
	"strings"
)

// SecondsToClock formats non-negative seconds as "HH:MM". The seconds
// remainder is truncated, so the round trip through ClockToSeconds loses
// sub-minute precision; minute granularity is all the UI shows.
func SecondsToClock(totalSeconds int64) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// ClockToSeconds parses "H:MM" or "HH:MM" into seconds. The second return is
// false when the input is malformed; callers must treat that as "no value
// entered", never as a real zero duration.
func ClockToSeconds(text string) (int64, bool) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, false
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || hours < 0 {
		return 0, false
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes < 0 {
		return 0, false
	}
	return hours*3600 + minutes*60, true
}
