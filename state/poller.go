package state

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nowplaying-cli/nowplaying/log"
	"golang.org/x/sync/semaphore"
)

// Refresher produces a fresh value, typically from an asynchronous host lookup.
type Refresher[T any] func(ctx context.Context) (T, error)

// Poller refreshes a Cell on a fixed cadence. Ticks never overlap: a tick that fires while the
// previous refresh is still outstanding is skipped, not queued. A failed refresh stores the zero
// value, so readers fall back to their defaults until the next successful tick. A refresh whose
// cell was written by someone else while it ran is dropped, so it never undoes a newer write.
type Poller[T any] struct {
	name     string
	cell     *Cell[T]
	interval time.Duration
	refresh  Refresher[T]

	sem      *semaphore.Weighted
	inflight sync.WaitGroup
	skipped  atomic.Uint64

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewPoller returns a stopped poller writing into cell. name tags its diagnostics.
func NewPoller[T any](name string, cell *Cell[T], interval time.Duration, refresh Refresher[T]) *Poller[T] {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Poller[T]{
		name:     name,
		cell:     cell,
		interval: interval,
		refresh:  refresh,
		sem:      semaphore.NewWeighted(1),
	}
}

// Start ticks once immediately and then every interval until ctx ends or Stop is called.
// Calling Start again has no effect.
func (p *Poller[T]) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}
	p.started = true

	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.run(ctx, p.done)
}

// Stop ends scheduling and waits for the loop to exit. An in-flight refresh is not interrupted
// beyond the cancellation of its context.
func (p *Poller[T]) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Tick starts one refresh in the background. It reports false, and counts a skip, when the
// previous refresh has not finished yet.
func (p *Poller[T]) Tick(ctx context.Context) bool {
	if !p.sem.TryAcquire(1) {
		p.skipped.Add(1)
		log.Tracef("%s: tick skipped, previous refresh still running", p.name)
		return false
	}

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		defer p.sem.Release(1)
		p.apply(ctx)
	}()
	return true
}

// Refresh runs one refresh on the caller's goroutine, with the same overlap rule as Tick.
func (p *Poller[T]) Refresh(ctx context.Context) bool {
	if !p.sem.TryAcquire(1) {
		p.skipped.Add(1)
		return false
	}
	defer p.sem.Release(1)

	p.apply(ctx)
	return true
}

// Wait blocks until refreshes started by Tick have finished.
func (p *Poller[T]) Wait() {
	p.inflight.Wait()
}

// Skipped counts ticks dropped because a refresh was outstanding.
func (p *Poller[T]) Skipped() uint64 {
	return p.skipped.Load()
}

func (p *Poller[T]) apply(ctx context.Context) {
	seq := p.cell.Seq()

	v, err := p.refresh(ctx)
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		log.Debugf("%s: refresh failed: %v", p.name, err)
		var zero T
		v = zero
	}

	_, stored := p.cell.Update(func(T) (T, bool) {
		return v, p.cell.load().seq == seq
	})
	if !stored {
		log.Tracef("%s: refresh dropped, the cell changed while it ran", p.name)
	}
}

func (p *Poller[T]) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}
