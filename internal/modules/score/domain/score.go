package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "wirematch/internal/platform/errors"
)

const (
	// DefaultKey is the storage key the high score lives under.
	DefaultKey = "wiringHighScore"
	// Minimum is the score of a player who has only ever seen level 1.
	Minimum = 1
)

// Parse decodes a stored decimal score. Anything that is not a whole number
// of at least Minimum is rejected.
func Parse(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: score %q is not a number", apperrors.ErrInvalidInput, raw)
	}
	if n < Minimum {
		return 0, fmt.Errorf("%w: score %d below %d", apperrors.ErrInvalidInput, n, Minimum)
	}
	return n, nil
}

func Format(score int) string {
	return strconv.Itoa(score)
}

// Snapshot describes what the store currently holds for the score key.
type Snapshot struct {
	Key     string
	Raw     string
	Present bool
	Corrupt bool
	Value   int
}
