// SPDX-License-Identifier: MIT

package task

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/vptk/profile"
)

// eventBuffer is the capacity of a task's Events channel: at most three
// progress messages plus one terminal message are ever sent, so deliveries
// never block even when nobody reads.
const eventBuffer = 8

// Task is the caller's handle on one calculation.
type Task struct {
	id     ID
	req    Request
	events chan Message
	done   chan struct{}

	// cancelRun stops the execution context derived in Start.
	cancelRun context.CancelFunc

	mu           sync.Mutex
	state        State
	lastProgress float64
	result       profile.Result
	err          error
}

func newTask(req Request) *Task {
	return &Task{
		id:     uuid.New(),
		req:    req,
		events: make(chan Message, eventBuffer),
		done:   make(chan struct{}),
		state:  Idle,
	}
}

// ID returns the task identifier.
func (t *Task) ID() ID { return t.id }

// Request returns the request the task was started with.
func (t *Task) Request() Request { return t.req }

// State returns the current lifecycle state.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Events returns the notification stream. It is closed right after the
// terminal message.
func (t *Task) Events() <-chan Message { return t.events }

// Done is closed when the task reaches a terminal state.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task ends or ctx is done.
//
// Returns:
//   - (result, nil) for Completed.
//   - ErrAborted for Aborted.
//   - a *Failure (errors.Is ErrFailed) for Failed.
//   - ctx.Err() if ctx ends first; the task itself is unaffected.
func (t *Task) Wait(ctx context.Context) (profile.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.result, t.err
	case <-ctx.Done():
		return profile.Result{}, ctx.Err()
	}
}

// progressed forwards a progress message unless it would run backwards.
// Caller holds the Manager lock.
func (t *Task) progressed(msg Message) {
	t.mu.Lock()
	if msg.Progress < t.lastProgress {
		t.mu.Unlock()
		return
	}
	t.lastProgress = msg.Progress
	t.mu.Unlock()

	t.events <- msg
}

// finish performs the single terminal transition. Caller holds the Manager
// lock and has already cleared the active slot.
func (t *Task) finish(state State, msg Message, res profile.Result, err error) {
	t.mu.Lock()
	t.state = state
	t.result = res
	t.err = err
	t.mu.Unlock()

	t.events <- msg
	close(t.events)
	close(t.done)
	if t.cancelRun != nil {
		t.cancelRun()
	}
}

// Manager owns at most one running task and serialises every transition of
// the active-task slot behind one mutex.
type Manager struct {
	opts Options
	log  *slog.Logger

	mu     sync.Mutex
	active *Task
	closed bool

	w        *worker       // nil in Synchronous mode
	pumpDone chan struct{} // closed when the worker's outbox is drained
}

// NewManager creates a Manager. In Background mode it starts the worker and
// the dispatcher goroutine; call Close to stop them.
func NewManager(opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := &Manager{opts: opts, log: log}

	if opts.Mode == Background {
		m.w = newWorker()
		m.pumpDone = make(chan struct{})
		go m.w.run()
		go m.pump()
	}

	return m
}

// Start aborts the running task, if any, and starts a new one.
//
// In Synchronous mode the calculation runs before Start returns; its events
// are buffered on the returned task. Cancelling ctx (or exceeding
// Options.Timeout) aborts the task.
//
// Errors:
//   - ctx.Err() if ctx is already done (no task is created).
//   - ErrClosed after Close.
func (m *Manager) Start(ctx context.Context, req Request) (*Task, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := newTask(req)
	runCtx, cancelRun := context.WithCancel(ctx)
	t.cancelRun = cancelRun

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		cancelRun()
		return nil, ErrClosed
	}
	if prev := m.active; prev != nil {
		m.abortLocked(prev, "superseded")
	}
	t.state = Running
	m.active = t
	if m.w != nil {
		m.w.inbox <- Message{
			Kind:       StartCalculation,
			TaskID:     t.id,
			Resolution: req.Resolution,
			Params:     req.Params,
		}
	}
	m.mu.Unlock()

	m.log.Debug("task started", "task_id", t.id, "mode", m.opts.Mode, "resolution", req.Resolution)
	m.watch(runCtx, t)

	if m.w == nil {
		execute(runCtx, t.id, req, false, m.dispatch)
	}

	return t, nil
}

// Abort aborts the active task if its id matches. It reports whether a task
// was aborted; unknown or already-terminal ids are a silent no-op.
func (m *Manager) Abort(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.active
	if t == nil || t.id != id {
		return false
	}
	m.abortLocked(t, "requested")

	return true
}

// Active returns the id of the running task, if any.
func (m *Manager) Active() (ID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return ID{}, false
	}
	return m.active.id, true
}

// Close aborts the running task and stops the worker. Further Start calls
// fail with ErrClosed. Close is idempotent.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	if t := m.active; t != nil {
		m.abortLocked(t, "closed")
	}
	m.mu.Unlock()

	if m.w != nil {
		close(m.w.inbox)
		<-m.pumpDone
	}

	return nil
}

// abortLocked transitions t to Aborted and tells the executor to stop.
// Caller holds m.mu and t is the active task.
func (m *Manager) abortLocked(t *Task, reason string) {
	m.active = nil
	t.finish(Aborted, Message{Kind: CalculationAborted, TaskID: t.id}, profile.Result{}, ErrAborted)
	if m.w != nil {
		m.w.inbox <- Message{Kind: AbortCalculation, TaskID: t.id}
	}
	m.log.Debug("task aborted", "task_id", t.id, "reason", reason)
}

// dispatch routes one executor message to the active task. Messages for any
// other id belong to a superseded or aborted task and are dropped.
func (m *Manager) dispatch(msg Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.active
	if t == nil || t.id != msg.TaskID {
		m.log.Debug("message dropped", "task_id", msg.TaskID, "kind", msg.Kind)
		return
	}

	switch msg.Kind {
	case ProgressUpdate:
		t.progressed(msg)
		m.log.Debug("task progress", "task_id", t.id, "progress", msg.Progress, "stage", msg.Stage)
	case CalculationComplete:
		m.active = nil
		if msg.Result == nil {
			fail := Message{Kind: CalculationError, TaskID: t.id, Error: "result missing"}
			t.finish(Failed, fail, profile.Result{}, &Failure{TaskID: t.id, Message: fail.Error})
			m.log.Debug("task finished", "task_id", t.id, "state", Failed)
			return
		}
		t.finish(Completed, msg, *msg.Result, nil)
		m.log.Debug("task finished", "task_id", t.id, "state", Completed)
	case CalculationError:
		m.active = nil
		t.finish(Failed, msg, profile.Result{}, &Failure{TaskID: t.id, Message: msg.Error})
		m.log.Debug("task finished", "task_id", t.id, "state", Failed, "error", msg.Error)
	case CalculationAborted:
		m.active = nil
		t.finish(Aborted, msg, profile.Result{}, ErrAborted)
		m.log.Debug("task finished", "task_id", t.id, "state", Aborted)
	default:
		m.log.Debug("message ignored", "task_id", msg.TaskID, "kind", msg.Kind)
	}
}

// pump forwards worker output to dispatch until the worker closes its outbox.
func (m *Manager) pump() {
	defer close(m.pumpDone)
	for msg := range m.w.outbox {
		m.dispatch(msg)
	}
}

// watch aborts t when ctx ends (caller cancellation or the configured
// timeout) before t reaches a terminal state.
func (m *Manager) watch(ctx context.Context, t *Task) {
	stop := func() {}
	if m.opts.Timeout > 0 {
		ctx, stop = context.WithTimeout(ctx, m.opts.Timeout)
	}

	go func() {
		defer stop()
		select {
		case <-ctx.Done():
			if m.Abort(t.id) {
				m.log.Debug("task context ended", "task_id", t.id, "cause", ctx.Err())
			}
		case <-t.done:
		}
	}()
}
