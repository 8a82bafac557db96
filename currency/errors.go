// SPDX-License-Identifier: MIT

package currency

import "errors"

// Sentinel errors returned by the Renminbi builder.
var (
	// ErrDimesOutOfRange indicates a dime count of 10 or more.
	ErrDimesOutOfRange = errors.New("currency: dimes out of range")

	// ErrCentsOutOfRange indicates a cent count of 10 or more.
	ErrCentsOutOfRange = errors.New("currency: cents out of range")

	// ErrInvalidStyle indicates a Style value outside the declared constants.
	ErrInvalidStyle = errors.New("currency: invalid style")
)
