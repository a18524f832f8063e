package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsTasks(t *testing.T) {
	p := New(4)
	defer p.Shutdown()

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		require.NoError(t, p.SubmitWait(func() {
			defer wg.Done()
			count.Add(1)
		}))
	}
	wg.Wait()
	assert.Equal(t, int64(100), count.Load())
}

func TestPoolFull(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	block := make(chan struct{})
	defer close(block)

	// One running task plus a full queue.
	require.NoError(t, p.Submit(func() { <-block }))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, p.Submit(func() { <-block }))
	require.NoError(t, p.Submit(func() { <-block }))

	err := p.Submit(func() {})
	assert.ErrorIs(t, err, ErrPoolFull)
}

func TestPoolClosed(t *testing.T) {
	p := New(1)
	p.Shutdown()

	assert.ErrorIs(t, p.Submit(func() {}), ErrPoolClosed)
	assert.ErrorIs(t, p.SubmitWait(func() {}), ErrPoolClosed)
}

func TestSubmitDuringShutdown(t *testing.T) {
	// Hammer SubmitWait concurrently with Shutdown: no send may panic, and
	// every task that was accepted must have run by the time Shutdown
	// returns.
	for i := 0; i < 50; i++ {
		p := New(2)

		var accepted, ran atomic.Int64
		var wg sync.WaitGroup
		for j := 0; j < 8; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := p.SubmitWait(func() { ran.Add(1) })
				if err == nil {
					accepted.Add(1)
				} else {
					assert.ErrorIs(t, err, ErrPoolClosed)
				}
			}()
		}

		p.Shutdown()
		wg.Wait()
		assert.Equal(t, accepted.Load(), ran.Load())
	}
}

func TestPoolRecoversFromPanic(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	require.NoError(t, p.SubmitWait(func() { panic("boom") }))

	done := make(chan struct{})
	require.NoError(t, p.SubmitWait(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker died after panic")
	}
}

func TestShutdownWaitsForInflight(t *testing.T) {
	p := New(2)

	var done atomic.Bool
	require.NoError(t, p.Submit(func() {
		time.Sleep(50 * time.Millisecond)
		done.Store(true)
	}))

	p.Shutdown()
	assert.True(t, done.Load())
}
