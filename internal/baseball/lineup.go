package baseball

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Batting order limits.
const (
	MinLineup = 5
	MaxLineup = 9
)

// Batting order errors. ParseBattingOrder wraps one of these with detail.
var (
	ErrTooFewBatters  = errors.New("not enough batters")
	ErrTooManyBatters = errors.New("too many batters")
	ErrDuplicate      = errors.New("duplicate batter")
	ErrOutOfRange     = errors.New("batter number out of range")
	ErrNotANumber     = errors.New("invalid character")
)

// ParseBattingOrder reads a comma separated list of candidate indexes.
// Count is checked first, then duplicates, then each entry in order.
func ParseBattingOrder(input string, candidates, minBatters, maxBatters int) ([]int, error) {
	parts := strings.Split(input, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < minBatters {
		return nil, fmt.Errorf("%w: need at least %d", ErrTooFewBatters, minBatters)
	}
	if len(parts) > maxBatters {
		return nil, fmt.Errorf("%w: at most %d", ErrTooManyBatters, maxBatters)
	}

	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		if seen[p] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, p)
		}
		seen[p] = true
	}

	order := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotANumber, p)
		}
		if n < 0 || n >= candidates {
			return nil, fmt.Errorf("%w: %d", ErrOutOfRange, n)
		}
		order = append(order, n)
	}

	// "01" and "1" pass the string check but name the same player.
	picked := make(map[int]bool, len(order))
	for _, n := range order {
		if picked[n] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicate, n)
		}
		picked[n] = true
	}
	return order, nil
}

// DefaultOrder returns the first min(candidates, maxBatters) indexes.
func DefaultOrder(candidates, maxBatters int) []int {
	n := min(candidates, maxBatters)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
