package xtest

import (
	"sync"
	"testing"
	"time"
)

func TestWaitChannelClosed(t *testing.T) {
	ch := make(chan struct{})
	go func() {
		time.Sleep(time.Millisecond)
		close(ch)
	}()
	WaitChannelClosed(t, ch)
}

func TestSpinWaitCondition(t *testing.T) {
	var (
		m     sync.Mutex
		ready bool
	)
	go func() {
		time.Sleep(time.Millisecond)
		m.Lock()
		ready = true
		m.Unlock()
	}()
	SpinWaitCondition(t, &m, func() bool {
		return ready
	})
}

func TestManyTimesRunsCleanup(t *testing.T) {
	var cleaned int
	runTest(t, func(t testing.TB) {
		t.Cleanup(func() {
			cleaned++
		})
	})
	if cleaned != 1 {
		t.Fatalf("cleanup called %d times", cleaned)
	}
}
