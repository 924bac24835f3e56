package timezone_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"tutorials/shared/timezone"
)

func TestTimezoneDefaultsToUTC(t *testing.T) {
	timezone.Init("")

	if timezone.GetLocation() != time.UTC {
		t.Errorf("expected UTC, got %s", timezone.GetLocation())
	}

	if timezone.Now().IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestTimezoneInvalidName(t *testing.T) {
	timezone.Init("Mars/Olympus_Mons")

	if timezone.GetLocation() != time.UTC {
		t.Errorf("expected fallback to UTC, got %s", timezone.GetLocation())
	}
}

func TestTimezoneFormat(t *testing.T) {
	timezone.Init("Asia/Jakarta")
	defer timezone.Init("UTC")

	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := timezone.Format(testTime, time.RFC3339); got != "2024-01-01T19:00:00+07:00" {
		t.Errorf("unexpected formatted time %s", got)
	}

	if !timezone.ToAppTime(testTime).Equal(testTime) {
		t.Error("ToAppTime must not change the instant")
	}
}
