// SPDX-License-Identifier: MIT

// Package task runs profile generation as a cancellable, progress-reporting
// unit of work.
//
// Lifecycle (per task id):
//
//	Idle ──Start──▶ Running ──▶ Completed
//	                   │  └───▶ Failed
//	                   └──────▶ Aborted   (Abort, superseding Start, ctx done, Close)
//
// A Manager owns at most one Running task. Starting a new one first aborts the
// current one: its consumer sees CALCULATION_ABORTED and then a closed channel,
// and nothing else for that id is ever delivered.
//
// Every task exposes a buffered Events channel carrying, in order:
//
//	PROGRESS_UPDATE*  (non-decreasing percent, 0..100)
//	exactly one of CALCULATION_COMPLETE | CALCULATION_ERROR | CALCULATION_ABORTED
//
// after which the channel is closed. Consumers must tolerate zero progress
// messages.
//
// Two execution modes share this contract:
//
//   - Background: a worker goroutine that speaks only the tagged Message
//     protocol (START_CALCULATION / ABORT_CALCULATION in, progress and terminal
//     messages out). A dispatcher routes its output to the active task and drops
//     anything addressed to a superseded id.
//   - Synchronous: generation runs inside Start on the caller's goroutine; the
//     buffered events (a single 100% progress and the terminal message) are read
//     after Start returns.
//
// Cancellation is cooperative. The running computation checks its abort signal
// between stages (profile curve, ball centres); the stage in flight finishes
// first, but its output is discarded.
package task
