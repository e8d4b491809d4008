// SPDX-License-Identifier: MIT

package task

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vptk/profile"
)

// execute runs one calculation and reports it through post using the worker
// protocol. It is the single body behind both execution modes.
//
// Steps:
//  1. Abort check, progress 0 "profile"   (reportStages only).
//  2. Rigid-wheel curve.
//  3. Abort check, progress 50 "shaft"    (reportStages only).
//  4. Ball centres.
//  5. Abort check, progress 100 "complete", then CALCULATION_COMPLETE.
//
// An abort observed at a check posts CALCULATION_ABORTED and stops. A generator
// error, or a panic anywhere below, posts CALCULATION_ERROR and no result.
// Exactly one terminal message is posted per call.
func execute(ctx context.Context, id ID, req Request, reportStages bool, post func(Message)) {
	defer func() {
		if r := recover(); r != nil {
			post(Message{Kind: CalculationError, TaskID: id, Error: fmt.Sprintf("panic: %v", r)})
		}
	}()

	// checkpoint returns false (after posting the abort) once ctx is done.
	checkpoint := func(pct float64, stage string, report bool) bool {
		if ctx.Err() != nil {
			post(Message{Kind: CalculationAborted, TaskID: id})
			return false
		}
		if report {
			post(Message{Kind: ProgressUpdate, TaskID: id, Progress: pct, Stage: stage})
		}
		return true
	}

	if !checkpoint(0, StageProfile, reportStages) {
		return
	}
	curve, err := profile.GenerateCurve(req.Resolution, req.Params)
	if err != nil {
		post(Message{Kind: CalculationError, TaskID: id, Error: err.Error()})
		return
	}

	if !checkpoint(50, StageShaft, reportStages) {
		return
	}
	shaft, err := profile.GenerateShaft(req.Params)
	if err != nil {
		post(Message{Kind: CalculationError, TaskID: id, Error: err.Error()})
		return
	}

	if !checkpoint(100, StageComplete, true) {
		return
	}
	post(Message{
		Kind:   CalculationComplete,
		TaskID: id,
		Result: &profile.Result{Curve: curve, Shaft: shaft},
	})
}
