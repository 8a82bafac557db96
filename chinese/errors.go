// SPDX-License-Identifier: MIT

package chinese

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the chinese package.
var (
	// ErrZeroDenominator indicates a fraction with a zero denominator.
	ErrZeroDenominator = errors.New("chinese: zero passed as denominator")

	// ErrInvalidDigit indicates a character outside 0-9 in a digit sequence.
	ErrInvalidDigit = errors.New("chinese: invalid digit")

	// ErrUnknownVariant indicates input that names no script.
	ErrUnknownVariant = errors.New("chinese: unknown variant")
)

// ValueError reports a value rejected by a constructor or builder.
// It unwraps to the sentinel in Err, so callers can match with errors.Is
// and read Value with errors.As.
type ValueError struct {
	Err   error
	Value any
}

// Error returns the sentinel message followed by the offending value.
func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: %v", e.Err, e.Value)
}

// Unwrap returns the sentinel.
func (e *ValueError) Unwrap() error {
	return e.Err
}
