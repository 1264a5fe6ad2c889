package gate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/cursorseries/gate"
)

func TestManualGate_SetCompletesAllWaiters(t *testing.T) {
	t.Parallel()

	g := gate.NewManualGate()
	f1 := g.Wait()
	f2 := g.Wait()
	require.Same(t, f1, f2)

	select {
	case <-f1.Done():
		t.Fatal("future completed before Set")
	default:
	}

	g.Set()

	ok, err := f1.Wait(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	// Set is idempotent.
	g.Set()
}

func TestManualGate_ResetIssuesFreshToken(t *testing.T) {
	t.Parallel()

	g := gate.NewManualGate()
	g.Set()
	g.Reset()

	f := g.Wait()
	select {
	case <-f.Done():
		t.Fatal("new token should not be completed")
	default:
	}
}

func TestManualGate_ResetNoOpIfNotCompleted(t *testing.T) {
	t.Parallel()

	g := gate.NewManualGate()
	before := g.Wait()
	g.Reset() // no-op: current token not completed
	require.Same(t, before, g.Wait())
}

func TestManualGate_ConcurrentSetReset(t *testing.T) {
	t.Parallel()

	g := gate.NewManualGate()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			g.Set()
		}
		close(done)
	}()
	for i := 0; i < 1000; i++ {
		g.Reset()
	}
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, _ = g.Wait().Wait(ctx) // must not deadlock or panic
}
