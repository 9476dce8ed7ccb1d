package timeutil

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestIsTimezoneValid(t *testing.T) {
	tests := []struct {
		tz   string
		want bool
	}{
		{"UTC", true},
		{"America/Los_Angeles", true},
		{"Europe/London", true},
		{"", false},
		{"Mars/Olympus_Mons", false},
	}
	for _, tt := range tests {
		if got := IsTimezoneValid(tt.tz); got != tt.want {
			t.Errorf("IsTimezoneValid(%q) = %v, want %v", tt.tz, got, tt.want)
		}
	}
}

func TestInZone(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := InZone(ts, "")
	if err != nil || !got.Equal(ts) || got.Location() != time.UTC {
		t.Errorf("InZone(empty) = %v, %v", got, err)
	}

	got, err = InZone(ts, "Asia/Tokyo")
	if err != nil {
		t.Fatalf("InZone: %v", err)
	}
	if !got.Equal(ts) {
		t.Errorf("InZone changed the instant: %v", got)
	}
	if got.Hour() != 21 {
		t.Errorf("Tokyo hour = %d, want 21", got.Hour())
	}

	if _, err := InZone(ts, "Nowhere/Special"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
