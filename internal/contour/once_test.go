package contour

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestOnceGuardRunsInitExactlyOnce(t *testing.T) {
	const racers = 32

	var g onceGuard
	var calls int32
	var value int

	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			err := g.do(func() error {
				atomic.AddInt32(&calls, 1)
				time.Sleep(time.Millisecond) // widen the race window
				value = 42
				return nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			// Whoever returns from do must observe the constructed value.
			if value != 42 {
				t.Errorf("observed partially constructed value %d", value)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("init ran %d times, want 1", calls)
	}
}

func TestOnceGuardMemoizesError(t *testing.T) {
	var g onceGuard
	sentinel := errors.New("decode failed")
	calls := 0

	for i := 0; i < 3; i++ {
		if err := g.do(func() error {
			calls++
			return sentinel
		}); !errors.Is(err, sentinel) {
			t.Fatalf("call %d: err = %v, want %v", i, err, sentinel)
		}
	}
	if calls != 1 {
		t.Fatalf("failed init ran %d times, want 1 (no retry)", calls)
	}
}
