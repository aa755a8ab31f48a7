package logger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultShipQueueSize    = 1024
	defaultShipFlushTimeout = 5 * time.Second
)

// AsyncOptions configures the async shipping queue.
type AsyncOptions struct {
	BufferSize   int
	FlushTimeout time.Duration
}

// AsyncHandler decouples a slow sink (remote log shipping) from the
// request path: Handle enqueues a cloned record and returns, a single
// goroutine drains the queue. When the queue is full the record is
// dropped rather than blocking the caller.
type AsyncHandler struct {
	queue   *shipQueue
	handler slog.Handler
}

type queued struct {
	ctx    context.Context
	record slog.Record
	sink   slog.Handler
}

// shipQueue is shared across WithAttrs/WithGroup derivatives so the
// whole handler family drains through one goroutine.
type shipQueue struct {
	ch           chan queued
	flushTimeout time.Duration
	closed       atomic.Bool
	dropped      atomic.Uint64
	done         sync.WaitGroup
}

func newShipQueue(opts AsyncOptions) *shipQueue {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultShipQueueSize
	}
	timeout := opts.FlushTimeout
	if timeout <= 0 {
		timeout = defaultShipFlushTimeout
	}
	q := &shipQueue{
		ch:           make(chan queued, size),
		flushTimeout: timeout,
	}
	q.done.Add(1)
	go q.drain()
	return q
}

func (q *shipQueue) drain() {
	defer q.done.Done()
	for item := range q.ch {
		_ = item.sink.Handle(item.ctx, item.record)
	}
}

func (q *shipQueue) offer(ctx context.Context, r slog.Record, sink slog.Handler) {
	if q.closed.Load() {
		return
	}
	select {
	case q.ch <- queued{ctx: ctx, record: r, sink: sink}:
	default:
		q.dropped.Add(1)
	}
}

func (q *shipQueue) shutdown(ctx context.Context) error {
	if q.closed.Swap(true) {
		return nil
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.flushTimeout)
		defer cancel()
	}
	close(q.ch)
	drained := make(chan struct{})
	go func() {
		q.done.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewAsyncHandler wraps handler with a shipping queue.
func NewAsyncHandler(handler slog.Handler, opts AsyncOptions) *AsyncHandler {
	return &AsyncHandler{
		queue:   newShipQueue(opts),
		handler: handler,
	}
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle enqueues the record for the drain goroutine. Always nil; a
// full queue drops silently and counts the drop.
func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.handler.Enabled(ctx, r.Level) {
		return nil
	}
	h.queue.offer(ctx, r.Clone(), h.handler)
	return nil
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{queue: h.queue, handler: h.handler.WithAttrs(attrs)}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{queue: h.queue, handler: h.handler.WithGroup(name)}
}

// Dropped reports how many records were discarded because the queue
// was full.
func (h *AsyncHandler) Dropped() uint64 {
	if h == nil || h.queue == nil {
		return 0
	}
	return h.queue.dropped.Load()
}

// Shutdown stops accepting records and flushes the queue, bounded by
// the flush timeout when ctx carries no deadline.
func (h *AsyncHandler) Shutdown(ctx context.Context) error {
	if h == nil || h.queue == nil {
		return nil
	}
	return h.queue.shutdown(ctx)
}
