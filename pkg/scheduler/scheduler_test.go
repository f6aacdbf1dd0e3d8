package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_BurstFillsFreeSlotsImmediately(t *testing.T) {
	s := New(2, 2*time.Second)

	var mu sync.Mutex
	starts := make([]time.Time, 0, 2)

	begin := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Schedule(context.Background(), func() error {
				mu.Lock()
				starts = append(starts, time.Now())
				mu.Unlock()
				time.Sleep(50 * time.Millisecond)
				return nil
			})
		}()
	}
	wg.Wait()

	require.Len(t, starts, 2)
	for _, st := range starts {
		assert.Less(t, st.Sub(begin), 500*time.Millisecond, "initial burst should not be spaced")
	}
}

func TestScheduler_SpacingAfterSaturation(t *testing.T) {
	s := New(2, 300*time.Millisecond)

	var mu sync.Mutex
	starts := make([]time.Time, 0, 3)

	begin := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Schedule(context.Background(), func() error {
				mu.Lock()
				starts = append(starts, time.Now())
				mu.Unlock()
				time.Sleep(100 * time.Millisecond)
				return nil
			})
		}()
		// keep submission order deterministic
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	require.Len(t, starts, 3)
	// Both slots are taken at ~t=0; the third task frees a slot after ~100ms
	// but must still wait out the spacing window from the second start.
	assert.GreaterOrEqual(t, starts[2].Sub(begin), 280*time.Millisecond)
}

func TestScheduler_MaxConcurrencyNeverExceeded(t *testing.T) {
	s := New(3, 10*time.Millisecond)

	var mu sync.Mutex
	current, peak := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Schedule(context.Background(), func() error {
				mu.Lock()
				current++
				if current > peak {
					peak = current
				}
				mu.Unlock()

				time.Sleep(30 * time.Millisecond)

				mu.Lock()
				current--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak, 3)
	assert.Equal(t, 0, s.Running())
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_FIFOOrder(t *testing.T) {
	s := New(1, 0)

	var mu sync.Mutex
	order := make([]int, 0, 5)

	// Occupy the single slot so the remaining tasks queue up in a known order.
	release := make(chan struct{})
	blockedStarted := make(chan struct{})
	go func() {
		_ = s.Schedule(context.Background(), func() error {
			close(blockedStarted)
			<-release
			return nil
		})
	}()
	<-blockedStarted

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.Schedule(context.Background(), func() error {
				mu.Lock()
				order = append(order, n)
				mu.Unlock()
				return nil
			})
		}(i)
		// submission order must be established before the next goroutine enqueues
		time.Sleep(10 * time.Millisecond)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestScheduler_TaskErrorPropagatesAndReleasesSlot(t *testing.T) {
	s := New(1, 0)

	boom := errors.New("remote exploded")
	err := s.Schedule(context.Background(), func() error { return boom })
	assert.Equal(t, boom, err)

	// The slot must have been released despite the failure.
	err = s.Schedule(context.Background(), func() error { return nil })
	assert.NoError(t, err)
}

func TestScheduler_ContextCancelledWhileQueued(t *testing.T) {
	s := New(1, 0)

	release := make(chan struct{})
	blockedStarted := make(chan struct{})
	go func() {
		_ = s.Schedule(context.Background(), func() error {
			close(blockedStarted)
			<-release
			return nil
		})
	}()
	<-blockedStarted

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	ran := false
	go func() {
		done <- s.Schedule(ctx, func() error {
			ran = true
			return nil
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
	assert.Equal(t, 0, s.Pending())

	close(release)
}
