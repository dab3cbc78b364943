package timezone_test

import (
	"testing"
	"time"
	"villadesk/shared/timezone"
)

func TestNowAndLocation(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Error("expected conversion to keep the same instant")
	}
}

func TestParseAndFormat(t *testing.T) {
	formatted := timezone.Format(time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC), "2006-01-02")
	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2025-07-10")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed.IsZero() {
		t.Error("Parse() returned a zero time")
	}
}
