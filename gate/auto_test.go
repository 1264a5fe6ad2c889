package gate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/cursorseries/gate"
)

func TestAutoSignal_SignalBeforeWait_IsRemembered(t *testing.T) {
	t.Parallel()

	s := gate.NewAutoSignal()
	s.Signal()

	ok, err := s.Wait(0).Wait(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	// Only one pending signal is remembered.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	ok, err = s.Wait(0).Wait(ctx)
	require.False(t, ok)
	require.Error(t, err)
}

func TestAutoSignal_WaitTimesOut(t *testing.T) {
	t.Parallel()

	s := gate.NewAutoSignal()
	ok, err := s.WaitContext(context.Background(), 20*time.Millisecond)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAutoSignal_FIFOFairness(t *testing.T) {
	t.Parallel()

	s := gate.NewAutoSignal()

	const n = 5
	futures := make([]*gate.Future, n)
	for i := 0; i < n; i++ {
		futures[i] = s.Wait(0)
	}

	const k = 3
	for i := 0; i < k; i++ {
		s.Signal()
	}

	for i := 0; i < k; i++ {
		select {
		case <-futures[i].Done():
			require.True(t, futures[i].Result())
		case <-time.After(time.Second):
			t.Fatalf("waiter %d never completed", i)
		}
	}

	for i := k; i < n; i++ {
		select {
		case <-futures[i].Done():
			t.Fatalf("waiter %d completed but should still be pending", i)
		default:
		}
	}
}

func TestAutoSignal_ConcurrentWaitSignal(t *testing.T) {
	t.Parallel()

	s := gate.NewAutoSignal()
	const n = 200

	var wg sync.WaitGroup
	results := make([]bool, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, _ := s.WaitContext(context.Background(), time.Second)
			results[i] = ok
		}(i)
	}

	go func() {
		for i := 0; i < n; i++ {
			s.Signal()
		}
	}()

	wg.Wait()
	for i, ok := range results {
		require.True(t, ok, "waiter %d did not receive a signal", i)
	}
}
