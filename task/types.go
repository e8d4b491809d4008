// SPDX-License-Identifier: MIT

package task

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/vptk/profile"
)

// ID identifies one task. Fresh ids are random (version 4) UUIDs.
type ID = uuid.UUID

// State is a task lifecycle state.
type State int32

const (
	Idle State = iota
	Running
	Completed
	Aborted
	Failed
)

// String renders the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == Completed || s == Aborted || s == Failed
}

// Kind tags a protocol Message.
type Kind int

const (
	// StartCalculation (→ worker): TaskID, Resolution, Params.
	StartCalculation Kind = iota + 1
	// AbortCalculation (→ worker): TaskID.
	AbortCalculation
	// ProgressUpdate (← worker): TaskID, Progress, Stage.
	ProgressUpdate
	// CalculationComplete (← worker): TaskID, Result.
	CalculationComplete
	// CalculationAborted (← worker): TaskID.
	CalculationAborted
	// CalculationError (← worker): TaskID, Error.
	CalculationError
)

// String renders the wire tag.
func (k Kind) String() string {
	switch k {
	case StartCalculation:
		return "START_CALCULATION"
	case AbortCalculation:
		return "ABORT_CALCULATION"
	case ProgressUpdate:
		return "PROGRESS_UPDATE"
	case CalculationComplete:
		return "CALCULATION_COMPLETE"
	case CalculationAborted:
		return "CALCULATION_ABORTED"
	case CalculationError:
		return "CALCULATION_ERROR"
	default:
		return fmt.Sprintf("KIND(%d)", int(k))
	}
}

// Terminal reports whether k ends a task.
func (k Kind) Terminal() bool {
	return k == CalculationComplete || k == CalculationAborted || k == CalculationError
}

// Stage labels carried by progress messages.
const (
	StageProfile  = "profile"  // rigid-wheel curve
	StageShaft    = "shaft"    // ball centres
	StageComplete = "complete" // result assembled
)

// Message is one tagged record of the worker protocol. Only the fields listed
// for its Kind are meaningful.
type Message struct {
	Kind   Kind
	TaskID ID

	Resolution int            // StartCalculation
	Params     profile.Params // StartCalculation

	Progress float64 // ProgressUpdate, 0..100
	Stage    string  // ProgressUpdate

	Result *profile.Result // CalculationComplete
	Error  string          // CalculationError
}

// Request is the input of one calculation.
type Request struct {
	Resolution int
	Params     profile.Params
}

// Mode selects the execution strategy.
type Mode int

const (
	// Background runs generation on a worker goroutine behind the message protocol.
	Background Mode = iota
	// Synchronous runs generation inside Start on the caller's goroutine.
	Synchronous
)

func (m Mode) String() string {
	if m == Synchronous {
		return "synchronous"
	}
	return "background"
}

// Options configures a Manager.
//   - Mode:    execution strategy (default Background).
//   - Logger:  lifecycle logging at Debug; nil discards.
//   - Timeout: when > 0, a task still running after Timeout is aborted.
type Options struct {
	Mode    Mode
	Logger  *slog.Logger
	Timeout time.Duration
}

// DefaultOptions returns Background mode, no logging, no timeout.
func DefaultOptions() Options {
	return Options{Mode: Background}
}
