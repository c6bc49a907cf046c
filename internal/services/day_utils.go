package services

import "time"

// UTCDay normalizes a timestamp to midnight UTC. Log dates are stored and
// compared at day granularity only.
func UTCDay(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func SameDay(a time.Time, b time.Time) bool {
	return UTCDay(a).Equal(UTCDay(b))
}
