package xsync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutex(t *testing.T) {
	for i := 0; i < 100; i++ {
		var m Mutex
		a, b := 1, 1

		var wg sync.WaitGroup
		f := func() {
			defer wg.Done()

			if a+b == 2 {
				a = 2
			} else {
				b = 2
			}
		}

		wg.Add(2)
		go m.WithLock(f)
		go m.WithLock(f)

		wg.Wait()
		require.Equal(t, 2, a)
		require.Equal(t, 2, b)
	}
}

func TestWithLock(t *testing.T) {
	var (
		m       Mutex
		counter int
		wg      sync.WaitGroup
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_ = WithLock(&m, func() int {
				counter++

				return counter
			})
		}()
	}
	wg.Wait()
	require.Equal(t, 100, WithLock(&m, func() int {
		return counter
	}))
}
