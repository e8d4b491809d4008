// SPDX-License-Identifier: MIT

package history

import "errors"

var (
	// ErrNotFound is returned by Get when no run carries the requested task id.
	ErrNotFound = errors.New("history: run not found")

	// ErrInvalidLimit is returned by Recent for a non-positive limit.
	ErrInvalidLimit = errors.New("history: limit must be positive")
)
