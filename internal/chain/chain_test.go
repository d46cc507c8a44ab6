package chain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onsocial/trustd/internal/storage/memory"
)

func TestTicker_Run(t *testing.T) {
	s := memory.New()

	ctx := context.Background()
	require.NoError(t, s.SetHeight(ctx, 10))

	ticker := NewTicker(s, 10*time.Millisecond)

	runCtx, cancel := context.WithCancel(ctx)

	done := make(chan error, 1)
	go func() {
		done <- ticker.Run(runCtx)
	}()

	require.Eventually(t, func() bool {
		h, err := s.GetHeight(ctx)
		require.NoError(t, err)
		return h > 10
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestNewTicker_DefaultInterval(t *testing.T) {
	ticker := NewTicker(memory.New(), 0)
	require.Equal(t, DefaultBlockInterval, ticker.interval)
}
