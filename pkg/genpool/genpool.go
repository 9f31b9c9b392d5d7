// Package genpool runs identity generation across a pool of worker
// goroutines, reporting progress and honoring caller cancellation. The
// core identity.Generate call is itself a blocking, uncancellable loop
// (spec.md §5); this package is the thread a host runs to be able to
// abandon it.
package genpool

import (
	"context"
	"time"

	"github.com/meshveil/identity/pkg/identity"
)

// Options configures a generation run.
type Options struct {
	// Variant selects which identity generation to mint.
	Variant identity.Variant
	// Threads is the number of concurrent worker goroutines. Defaults to
	// 1 if <= 0.
	Threads int
	// Count is how many accepted identities to collect before the run
	// stops. Defaults to 1 if <= 0.
	Count int
	// TickTimeout bounds how long Run waits between progress callbacks
	// when no new identity has arrived. Defaults to one hour if zero.
	TickTimeout time.Duration
	// DidTick, if set, is invoked after every new identity and at least
	// once per TickTimeout, with the run's start time, the most recently
	// accepted identity (nil before the first), the number accepted so
	// far, and the summed per-thread attempt counter.
	DidTick func(started time.Time, last *identity.Identity, accepted int, attempts uint64)
	// Ctx bounds the run's lifetime; canceling it stops all workers and
	// returns whatever identities were collected so far. Defaults to
	// context.Background().
	Ctx context.Context
}

func (o Options) withDefaults() Options {
	if o.Threads <= 0 {
		o.Threads = 1
	}
	if o.Count <= 0 {
		o.Count = 1
	}
	if o.TickTimeout <= 0 {
		o.TickTimeout = time.Hour
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	return o
}

// Run generates identities across a pool of workers until Count have been
// accepted or the context is canceled, returning whatever was collected.
func Run(opts Options) []*identity.Identity {
	opts = opts.withDefaults()

	nextChan := make(chan *identity.Identity)
	accepted := make([]*identity.Identity, 0, opts.Count)

	ctx, cancel := context.WithCancel(opts.Ctx)
	defer cancel()

	threads := startWorkers(ctx, opts.Threads, opts.Variant, nextChan)

	startTime := time.Now()
	var last *identity.Identity

	for ctx.Err() == nil {
		var attempts uint64
		for _, th := range threads {
			attempts += th.counter()
		}

		if opts.DidTick != nil {
			opts.DidTick(startTime, last, len(accepted), attempts)
		}

		if len(accepted) >= opts.Count {
			cancel()
			break
		}

		select {
		case last = <-nextChan:
			accepted = append(accepted, last)
		case <-ctx.Done():
		case <-time.After(opts.TickTimeout):
		}
	}

	return accepted
}

func startWorkers(ctx context.Context, n int, variant identity.Variant, out chan<- *identity.Identity) []*worker {
	workers := make([]*worker, n)
	for i := range workers {
		workers[i] = newWorker(ctx, variant, out)
		workers[i].start()
	}
	return workers
}
