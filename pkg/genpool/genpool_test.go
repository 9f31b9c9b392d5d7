package genpool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshveil/identity/pkg/identity"
)

func TestRunCollectsRequestedCount(t *testing.T) {
	var ticks int

	ids := Run(Options{
		Variant:     identity.C25519,
		Threads:     2,
		Count:       3,
		TickTimeout: 50 * time.Millisecond,
		DidTick: func(time.Time, *identity.Identity, int, uint64) {
			ticks++
		},
	})

	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.True(t, id.Validate())
	}
	assert.Greater(t, ticks, 0)
}

func TestRunStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ids := Run(Options{
		Variant: identity.C25519,
		Count:   1000,
		Ctx:     ctx,
	})

	assert.Less(t, len(ids), 1000)
}
