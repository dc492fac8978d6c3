package model

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the time unit a duration was entered in.
type Unit int

const (
	UnitSeconds Unit = iota
	UnitMinutes
	UnitHours
)

// Units lists all units in display order.
var Units = []Unit{UnitSeconds, UnitMinutes, UnitHours}

func (unit Unit) String() string {
	switch unit {
	case UnitSeconds:
		return "sec"
	case UnitMinutes:
		return "min"
	case UnitHours:
		return "hour"
	default:
		return fmt.Sprintf("unit(%d)", int(unit))
	}
}

// Multiplier returns how many seconds one unit holds.
func (unit Unit) Multiplier() (int, error) {
	switch unit {
	case UnitSeconds:
		return 1, nil
	case UnitMinutes:
		return 60, nil
	case UnitHours:
		return 3600, nil
	default:
		return 0, fmt.Errorf("unknown time unit %d", int(unit))
	}
}

// ParseUnit accepts the short names used in settings files and the UI.
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "s", "sec", "secs", "second", "seconds":
		return UnitSeconds, nil
	case "m", "min", "mins", "minute", "minutes":
		return UnitMinutes, nil
	case "h", "hour", "hours":
		return UnitHours, nil
	default:
		return 0, fmt.Errorf("unknown time unit %q", value)
	}
}

// MarshalText writes the short unit name.
func (unit Unit) MarshalText() ([]byte, error) {
	if _, err := unit.Multiplier(); err != nil {
		return nil, err
	}
	return []byte(unit.String()), nil
}

// UnmarshalText parses any name accepted by ParseUnit.
func (unit *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*unit = parsed
	return nil
}

// ToSeconds converts a (value, unit) pair to whole seconds.
func ToSeconds(value int, unit Unit) (int, error) {
	multiplier, err := unit.Multiplier()
	if err != nil {
		return 0, err
	}
	limit := MaxSeconds / int64(multiplier)
	if int64(value) > limit || int64(value) < -limit {
		return 0, &ConfigError{Field: "duration", Value: int64(value), Reason: "is too large for unit " + unit.String()}
	}
	return value * multiplier, nil
}

// ToDuration converts a (value, unit) pair to a time.Duration.
func ToDuration(value int, unit Unit) (time.Duration, error) {
	seconds, err := ToSeconds(value, unit)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}
