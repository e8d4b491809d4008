// SPDX-License-Identifier: MIT

package task_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vptk/profile"
	"github.com/katalvlaran/vptk/task"
)

const drainTimeout = 5 * time.Second

func stockRequest(resolution int) task.Request {
	return task.Request{
		Resolution: resolution,
		Params:     profile.Params{Zg: 18, Rsh: 3, E: 1.2, Rd: 30.8, Zsh: 17},
	}
}

// drain reads every event until the channel closes.
func drain(t *testing.T, tk *task.Task) []task.Message {
	t.Helper()
	var out []task.Message
	deadline := time.After(drainTimeout)
	for {
		select {
		case msg, ok := <-tk.Events():
			if !ok {
				return out
			}
			out = append(out, msg)
		case <-deadline:
			t.Fatalf("events of task %s not closed after %s", tk.ID(), drainTimeout)
			return out
		}
	}
}

// requireWellFormed checks the event-stream contract: progress is
// non-decreasing, exactly one terminal message, and it comes last.
func requireWellFormed(t *testing.T, msgs []task.Message, id task.ID) task.Message {
	t.Helper()
	require.NotEmpty(t, msgs)

	last := -1.0
	for i, msg := range msgs {
		require.Equal(t, id, msg.TaskID, "message %d carries a foreign id", i)
		if i < len(msgs)-1 {
			require.Equal(t, task.ProgressUpdate, msg.Kind, "message %d", i)
			require.GreaterOrEqual(t, msg.Progress, last)
			last = msg.Progress
		}
	}
	terminal := msgs[len(msgs)-1]
	require.True(t, terminal.Kind.Terminal(), "last message is %s", terminal.Kind)

	return terminal
}

// ManagerSuite runs the lifecycle contract against one execution mode.
type ManagerSuite struct {
	suite.Suite
	mode task.Mode
	m    *task.Manager
}

func (s *ManagerSuite) SetupTest() {
	opts := task.DefaultOptions()
	opts.Mode = s.mode
	s.m = task.NewManager(opts)
}

func (s *ManagerSuite) TearDownTest() {
	s.Require().NoError(s.m.Close())
}

// TestComplete verifies a full run delivers a result and a closed stream.
func (s *ManagerSuite) TestComplete() {
	t := s.T()
	tk, err := s.m.Start(context.Background(), stockRequest(600))
	require.NoError(t, err)

	msgs := drain(t, tk)
	terminal := requireWellFormed(t, msgs, tk.ID())
	require.Equal(t, task.CalculationComplete, terminal.Kind)
	require.NotNil(t, terminal.Result)
	require.Equal(t, 600, terminal.Result.Curve.Len())
	require.Equal(t, 18, terminal.Result.Shaft.Len())

	res, err := tk.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 600, res.Curve.Len())
	require.Equal(t, task.Completed, tk.State())

	_, active := s.m.Active()
	require.False(t, active)
}

// TestProgressStages checks the stage reports each mode is expected to emit.
func (s *ManagerSuite) TestProgressStages() {
	t := s.T()
	tk, err := s.m.Start(context.Background(), stockRequest(64))
	require.NoError(t, err)

	msgs := drain(t, tk)
	requireWellFormed(t, msgs, tk.ID())

	var stages []string
	for _, msg := range msgs[:len(msgs)-1] {
		stages = append(stages, msg.Stage)
	}
	if s.mode == task.Synchronous {
		require.Equal(t, []string{task.StageComplete}, stages)
		require.Equal(t, 100.0, msgs[0].Progress)
	} else {
		require.Equal(t, []string{task.StageProfile, task.StageShaft, task.StageComplete}, stages)
	}
}

// TestSupersede verifies that a second Start ends the first task before the
// second one is registered.
func (s *ManagerSuite) TestSupersede() {
	t := s.T()
	first, err := s.m.Start(context.Background(), stockRequest(20000))
	require.NoError(t, err)
	second, err := s.m.Start(context.Background(), stockRequest(32))
	require.NoError(t, err)
	require.NotEqual(t, first.ID(), second.ID())

	firstMsgs := drain(t, first)
	terminal := requireWellFormed(t, firstMsgs, first.ID())
	require.Contains(t, []task.Kind{task.CalculationComplete, task.CalculationAborted}, terminal.Kind)
	require.True(t, first.State().Terminal())

	secondMsgs := drain(t, second)
	terminal = requireWellFormed(t, secondMsgs, second.ID())
	require.Equal(t, task.CalculationComplete, terminal.Kind)
	require.Equal(t, 32, terminal.Result.Curve.Len())
}

// TestAbortUnknownID ensures unknown ids are a silent no-op.
func (s *ManagerSuite) TestAbortUnknownID() {
	require.False(s.T(), s.m.Abort(task.ID{}))
}

// TestAbortAfterCompletion ensures aborting a terminal task changes nothing.
func (s *ManagerSuite) TestAbortAfterCompletion() {
	t := s.T()
	tk, err := s.m.Start(context.Background(), stockRequest(16))
	require.NoError(t, err)
	_, err = tk.Wait(context.Background())
	require.NoError(t, err)

	require.False(t, s.m.Abort(tk.ID()))
	require.Equal(t, task.Completed, tk.State())

	msgs := drain(t, tk)
	require.Equal(t, task.CalculationComplete, msgs[len(msgs)-1].Kind)
}

// TestStartWithDoneContext rejects a request whose context already ended.
func (s *ManagerSuite) TestStartWithDoneContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tk, err := s.m.Start(ctx, stockRequest(16))
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Nil(s.T(), tk)
}

// TestStartAfterClose returns ErrClosed.
func (s *ManagerSuite) TestStartAfterClose() {
	t := s.T()
	require.NoError(t, s.m.Close())
	require.NoError(t, s.m.Close(), "Close must be idempotent")

	_, err := s.m.Start(context.Background(), stockRequest(16))
	require.ErrorIs(t, err, task.ErrClosed)
}

// TestWaitContext returns the caller's error without touching the task.
func (s *ManagerSuite) TestWaitContext() {
	t := s.T()
	tk, err := s.m.Start(context.Background(), stockRequest(16))
	require.NoError(t, err)
	_, err = tk.Wait(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// A finished task answers even with a dead context when done wins the
	// select; either way the task state is untouched.
	_, err = tk.Wait(ctx)
	if err != nil {
		require.True(t, errors.Is(err, context.Canceled))
	}
	require.Equal(t, task.Completed, tk.State())
}

// TestWaitNilContext treats a nil context like Start does.
func (s *ManagerSuite) TestWaitNilContext() {
	t := s.T()
	tk, err := s.m.Start(nil, stockRequest(16))
	require.NoError(t, err)

	var res profile.Result
	require.NotPanics(t, func() {
		res, err = tk.Wait(nil)
	})
	require.NoError(t, err)
	require.Equal(t, 16, res.Curve.Len())
}

func TestManagerBackground(t *testing.T) {
	suite.Run(t, &ManagerSuite{mode: task.Background})
}

func TestManagerSynchronous(t *testing.T) {
	suite.Run(t, &ManagerSuite{mode: task.Synchronous})
}

func TestFailureUnwrapsToErrFailed(t *testing.T) {
	t.Parallel()
	f := &task.Failure{Message: "boom"}
	require.ErrorIs(t, f, task.ErrFailed)
	require.Contains(t, f.Error(), "boom")
	require.False(t, errors.Is(f, task.ErrAborted))
}

func TestStateAndKindStrings(t *testing.T) {
	t.Parallel()
	require.Equal(t, "running", task.Running.String())
	require.True(t, task.Failed.Terminal())
	require.False(t, task.Running.Terminal())
	require.Equal(t, "START_CALCULATION", task.StartCalculation.String())
	require.Equal(t, "CALCULATION_ERROR", task.CalculationError.String())
	require.True(t, task.CalculationAborted.Terminal())
	require.False(t, task.ProgressUpdate.Terminal())
}
