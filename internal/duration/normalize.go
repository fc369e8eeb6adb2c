// Package duration turns the form's duration inputs into the canonical
// "H:MM:SS" / "D days, H:MM:SS" strings the calculation service accepts.
package duration

import (
	"fmt"
	"math/big"
	"strings"

	"time-calculator/internal/model"
)

var sixty = big.NewInt(60)

// Normalize renders magnitude in unit as a canonical duration string.
// Seconds carry into minutes and minutes into hours; hours never carry into days.
func Normalize(magnitude uint64, unit model.DurationUnit) (string, error) {
	return normalize(new(big.Int).SetUint64(magnitude), unit)
}

// NormalizeText is Normalize for raw field text of any length. Empty or
// non-digit text counts as zero; upstream validation has already rejected
// anything that is not digits.
func NormalizeText(raw string, unit model.DurationUnit) (string, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok || n.Sign() < 0 {
		n = new(big.Int)
	}
	return normalize(n, unit)
}

func normalize(n *big.Int, unit model.DurationUnit) (string, error) {
	switch unit {
	case model.UnitSeconds:
		minutes, seconds := new(big.Int).DivMod(n, sixty, new(big.Int))
		hours, minutes := new(big.Int).DivMod(minutes, sixty, new(big.Int))
		return clock(hours, minutes.Uint64(), seconds.Uint64()), nil
	case model.UnitMinutes:
		hours, minutes := new(big.Int).DivMod(n, sixty, new(big.Int))
		return clock(hours, minutes.Uint64(), 0), nil
	case model.UnitHours:
		return clock(n, 0, 0), nil
	case model.UnitDays:
		return n.String() + " days, 0:00:00", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

func clock(hours *big.Int, minutes, seconds uint64) string {
	return fmt.Sprintf("%s:%02d:%02d", hours.String(), minutes, seconds)
}
