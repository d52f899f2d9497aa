package cli

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotANumber reports interactive input that is not an integer.
var ErrNotANumber = errors.New("not a number")

// OutOfRangeError reports a selection outside [1, Count].
type OutOfRangeError struct {
	Count int
}

func (e *OutOfRangeError) Error() string {
	return "selection out of range [1," + strconv.Itoa(e.Count) + "]"
}

// ParseSelection interprets one line of interactive input against a list
// of count displayed rows. An empty line is a skip, not an error. The
// returned index is 1-based.
//
// Callers translate the two error kinds into their own wording and
// severity: the repo listing treats them as fatal, the build listing
// reports them and still exits cleanly.
func ParseSelection(line string, count int) (index int, skip bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, true, nil
	}

	n, convErr := strconv.Atoi(trimmed)
	if convErr != nil {
		return 0, false, ErrNotANumber
	}

	if n < 1 || n > count {
		return 0, false, &OutOfRangeError{Count: count}
	}

	return n, false, nil
}
