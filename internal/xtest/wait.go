package xtest

import (
	"sync"
	"testing"
	"time"
)

const commonWaitTimeout = 10 * time.Second

func WaitChannelClosed(t testing.TB, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
		// pass
	case <-time.After(commonWaitTimeout):
		t.Fatal("failed to wait channel closed")
	}
}

// SpinWaitCondition waits for cond is true, cond is called under l if l is not nil
func SpinWaitCondition(t testing.TB, l sync.Locker, cond func() bool) {
	t.Helper()

	start := time.Now()
	for {
		res := func() bool {
			if l != nil {
				l.Lock()
				defer l.Unlock()
			}

			return cond()
		}()
		if res {
			return
		}
		if time.Since(start) > commonWaitTimeout {
			t.Fatal("condition not reached")
		}
		time.Sleep(time.Millisecond)
	}
}
