// SPDX-License-Identifier: MIT

package numeral

import "errors"

// ErrTooLarge is returned by Format when the magnitude has more than
// MaxDigits decimal digits and no large unit is left to name it.
var ErrTooLarge = errors.New("numeral: value too large")
