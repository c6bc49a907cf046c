package services

import (
	"testing"
	"time"
)

func TestUTCDay(t *testing.T) {
	eastern := time.FixedZone("UTC+3", 3*60*60)
	value := time.Date(2026, 3, 10, 1, 30, 0, 0, eastern)

	got := UTCDay(value)
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	night := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Fatalf("expected same UTC day")
	}
	if SameDay(night, nextDay) {
		t.Fatalf("expected different UTC days")
	}
}
