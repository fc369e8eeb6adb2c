package model

import (
	"fmt"
	"strings"
)

// DurationUnit is the unit selected next to the duration magnitude.
// The set is closed: every switch over it must list all four values.
type DurationUnit string

const (
	UnitSeconds DurationUnit = "seconds"
	UnitMinutes DurationUnit = "minutes"
	UnitHours   DurationUnit = "hours"
	UnitDays    DurationUnit = "days"
)

// DefaultDurationUnit is what the unit selector shows on a fresh form.
const DefaultDurationUnit = UnitSeconds

// DurationUnits lists the selector options in display order.
var DurationUnits = []DurationUnit{UnitSeconds, UnitMinutes, UnitHours, UnitDays}

// ParseDurationUnit maps selector text to a unit. Empty text is the default unit.
func ParseDurationUnit(s string) (DurationUnit, error) {
	switch DurationUnit(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultDurationUnit, nil
	case UnitSeconds:
		return UnitSeconds, nil
	case UnitMinutes:
		return UnitMinutes, nil
	case UnitHours:
		return UnitHours, nil
	case UnitDays:
		return UnitDays, nil
	}
	return "", fmt.Errorf("unknown duration unit %q", s)
}

// Valid reports whether u is one of the four known units.
func (u DurationUnit) Valid() bool {
	switch u {
	case UnitSeconds, UnitMinutes, UnitHours, UnitDays:
		return true
	}
	return false
}

// Next returns the unit after u in selector order, wrapping around.
func (u DurationUnit) Next() DurationUnit {
	for i, v := range DurationUnits {
		if v == u {
			return DurationUnits[(i+1)%len(DurationUnits)]
		}
	}
	return DefaultDurationUnit
}

// Prev returns the unit before u in selector order, wrapping around.
func (u DurationUnit) Prev() DurationUnit {
	for i, v := range DurationUnits {
		if v == u {
			return DurationUnits[(i+len(DurationUnits)-1)%len(DurationUnits)]
		}
	}
	return DefaultDurationUnit
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *DurationUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseDurationUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
