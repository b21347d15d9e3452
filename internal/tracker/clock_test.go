package tracker

import "testing"

func TestSecondsToClock(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00"},
		{59, "00:00"},
		{60, "00:01"},
		{600, "00:10"},
		{3600, "01:00"},
		{3661, "01:01"},
		{7322, "02:02"},
		{36000, "10:00"},
		{90061, "25:01"},
	}

	for _, tt := range tests {
		if got := SecondsToClock(tt.seconds); got != tt.want {
			t.Errorf("SecondsToClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestClockToSeconds(t *testing.T) {
	tests := []struct {
		text   string
		want   int64
		wantOK bool
	}{
		{"00:00", 0, true},
		{"0:30", 1800, true},
		{"01:00", 3600, true},
		{"10:45", 38700, true},
		{"25:01", 90060, true},
		{"", 0, false},
		{"90", 0, false},
		{":30", 0, false},
		{"1:", 0, false},
		{"one:30", 0, false},
		{"1:thirty", 0, false},
		{"-1:30", 0, false},
		{"1:2:3", 0, false},
	}

	for _, tt := range tests {
		got, ok := ClockToSeconds(tt.text)
		if ok != tt.wantOK {
			t.Errorf("ClockToSeconds(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ClockToSeconds(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

// The round trip truncates to the nearest whole minute below.
func TestClockRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 59, 60, 61, 599, 600, 3599, 3600, 3725, 86399} {
		back, ok := ClockToSeconds(SecondsToClock(n))
		if !ok {
			t.Fatalf("round trip of %d failed to parse", n)
		}
		if want := n - n%60; back != want {
			t.Errorf("round trip of %d = %d, want %d", n, back, want)
		}
	}
}
