package timeutil

import (
	"fmt"
	"time"
)

// IsTimezoneValid checks the name against the system tz database.
func IsTimezoneValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// InZone converts t for display in the named timezone.
// Stored times are UTC nanoseconds; only presentation is zoned.
func InZone(t time.Time, tz string) (time.Time, error) {
	if tz == "" || tz == "UTC" {
		return t.UTC(), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return t, fmt.Errorf("failed to load timezone %s: %w", tz, err)
	}
	return t.In(loc), nil
}
