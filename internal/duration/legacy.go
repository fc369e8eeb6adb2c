package duration

import (
	"fmt"
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"time-calculator/internal/model"
)

var (
	// [D day(s), ]H:MM[:SS]
	legacyClockPattern = regexp.MustCompile(`(?i)^(?:(\d+)\s+days?,\s+)?(\d+):(\d{1,2})(?::(\d{1,2}))?$`)
	// :SS
	legacySecondsPattern = regexp.MustCompile(`^:(\d{1,2})$`)
)

// ParseLegacy reads a free-form duration and returns its length in seconds.
// Minutes and seconds components must be within 0..59, and the total must fit
// in a uint64.
func ParseLegacy(text string) (uint64, error) {
	text = strings.TrimSpace(text)

	if m := legacySecondsPattern.FindStringSubmatch(text); m != nil {
		sec, _ := atou(m[1])
		if sec > 59 {
			return 0, fmt.Errorf("%w: seconds must be between 0 and 59", ErrOutOfRange)
		}
		return sec, nil
	}

	m := legacyClockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFormat, text)
	}

	var parts [4]uint64
	for i, group := range m[1:5] {
		n, err := atou(group)
		if err != nil {
			return 0, fmt.Errorf("%w: %s is too large", ErrOutOfRange, group)
		}
		parts[i] = n
	}
	days, hours, minutes, seconds := parts[0], parts[1], parts[2], parts[3]
	if minutes > 59 {
		return 0, fmt.Errorf("%w: minutes must be between 0 and 59", ErrOutOfRange)
	}
	if seconds > 59 {
		return 0, fmt.Errorf("%w: seconds must be between 0 and 59", ErrOutOfRange)
	}

	total := minutes*60 + seconds
	for _, term := range [][2]uint64{{days, 86400}, {hours, 3600}} {
		hi, lo := bits.Mul64(term[0], term[1])
		if hi != 0 {
			return 0, fmt.Errorf("%w: %s is too long", ErrOutOfRange, text)
		}
		var carry uint64
		total, carry = bits.Add64(total, lo, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: %s is too long", ErrOutOfRange, text)
		}
	}
	return total, nil
}

// Canonicalize reduces a free-form duration to the canonical form by way of
// its total seconds, so it leaves the client through the same path as a
// seconds-unit input.
func Canonicalize(text string) (string, error) {
	total, err := ParseLegacy(text)
	if err != nil {
		return "", err
	}
	return Normalize(total, model.UnitSeconds)
}

// atou parses a regexp digit group; empty groups are zero.
func atou(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}
