// SPDX-License-Identifier: MIT

package task

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned by Task.Wait for a task that ended Aborted.
	ErrAborted = errors.New("task: calculation aborted")

	// ErrFailed is the sentinel every *Failure unwraps to.
	ErrFailed = errors.New("task: calculation failed")

	// ErrClosed is returned by Start after Close.
	ErrClosed = errors.New("task: manager closed")
)

// Failure is the terminal error of a Failed task: the message carried by
// CALCULATION_ERROR.
type Failure struct {
	TaskID  ID
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("task %s: calculation failed: %s", f.TaskID, f.Message)
}

// Unwrap lets errors.Is(err, ErrFailed) match.
func (f *Failure) Unwrap() error { return ErrFailed }
