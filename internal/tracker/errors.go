package tracker

import "errors"

var (
	// ErrInvalidTimezone is returned when a supplied zone identifier is not a
	// recognized IANA timezone. Callers must fall back (e.g. to UTC) or
	// reject the request; this package never substitutes a zone silently.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrMissingValue is returned when a log write requires a numeric value
	// and none was supplied (duration creation, or any update).
	ErrMissingValue = errors.New("missing value")

	// ErrUnsupportedItemType is returned for a type outside the closed set
	// {time, duration, amount, consistency}.
	ErrUnsupportedItemType = errors.New("unsupported item type")
)
