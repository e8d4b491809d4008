// SPDX-License-Identifier: MIT

package task

import (
	"context"
	"sync"
)

// inboxSize bounds queued START/ABORT messages. The worker loop never blocks
// on anything but its inbox, so the buffer only smooths bursts.
const inboxSize = 16

// worker is the background execution strategy. It talks to its Manager only
// through messages: START_CALCULATION / ABORT_CALCULATION arrive on inbox,
// progress and terminal messages leave on outbox.
type worker struct {
	inbox  chan Message
	outbox chan Message

	mu      sync.Mutex
	running map[ID]context.CancelFunc // in-flight calculations by task id
	wg      sync.WaitGroup
}

func newWorker() *worker {
	return &worker{
		inbox:   make(chan Message, inboxSize),
		outbox:  make(chan Message),
		running: make(map[ID]context.CancelFunc),
	}
}

// run is the worker loop. It returns after inbox is closed and every in-flight
// calculation has posted its terminal message; outbox is closed last.
func (w *worker) run() {
	for msg := range w.inbox {
		switch msg.Kind {
		case StartCalculation:
			w.start(msg)
		case AbortCalculation:
			w.abort(msg.TaskID)
		}
	}

	// Inbox closed: abort whatever is still running and drain.
	w.mu.Lock()
	for _, cancel := range w.running {
		cancel()
	}
	w.mu.Unlock()
	w.wg.Wait()
	close(w.outbox)
}

func (w *worker) start(msg Message) {
	ctx, cancel := context.WithCancel(context.Background())
	w.mu.Lock()
	w.running[msg.TaskID] = cancel
	w.mu.Unlock()

	req := Request{Resolution: msg.Resolution, Params: msg.Params}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.forget(msg.TaskID)
		execute(ctx, msg.TaskID, req, true, w.post)
	}()
}

func (w *worker) abort(id ID) {
	w.mu.Lock()
	cancel, ok := w.running[id]
	w.mu.Unlock()
	if ok {
		cancel()
	}
}

func (w *worker) forget(id ID) {
	w.mu.Lock()
	cancel, ok := w.running[id]
	delete(w.running, id)
	w.mu.Unlock()
	if ok {
		cancel()
	}
}

func (w *worker) post(msg Message) { w.outbox <- msg }
