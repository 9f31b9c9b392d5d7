package genpool

import (
	"context"
	"sync/atomic"

	"github.com/meshveil/identity/pkg/identity"
)

// worker repeatedly mints identities of a fixed variant, pushing each one
// onto a shared channel, until its context is canceled. identity.Generate
// itself cannot be interrupted mid-attempt; a canceled worker simply
// doesn't start another one and its goroutine is abandoned by the caller.
type worker struct {
	ctx     context.Context
	variant identity.Variant
	out     chan<- *identity.Identity
	count   uint64
}

func newWorker(ctx context.Context, variant identity.Variant, out chan<- *identity.Identity) *worker {
	return &worker{ctx: ctx, variant: variant, out: out}
}

func (w *worker) counter() uint64 {
	return atomic.LoadUint64(&w.count)
}

func (w *worker) start() {
	go func() {
		for w.ctx.Err() == nil {
			id, err := identity.Generate(w.variant)
			atomic.AddUint64(&w.count, 1)
			if err != nil {
				continue
			}

			select {
			case w.out <- id:
			case <-w.ctx.Done():
				return
			}
		}
	}()
}
