package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cqlpager/cqlpager/executor"
	"github.com/cqlpager/cqlpager/internal/xtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPromise(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		p := NewPromise[int]()
		require.True(t, p.Complete(1))
		require.False(t, p.Complete(2))
		require.False(t, p.Fail(errors.New("late")))
		v, err := p.Future().Result()
		require.NoError(t, err)
		require.Equal(t, 1, v)
	})
	t.Run("Fail", func(t *testing.T) {
		cause := errors.New("cause")
		p := NewPromise[int]()
		require.True(t, p.Resolve(5, cause))
		v, err := p.Future().Result()
		require.ErrorIs(t, err, cause)
		require.Zero(t, v)
	})
}

func TestAwait(t *testing.T) {
	ctx := xtest.Context(t)
	t.Run("Completed", func(t *testing.T) {
		v, err := Completed("row").Await(ctx)
		require.NoError(t, err)
		require.Equal(t, "row", v)
	})
	t.Run("ContextDone", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewPromise[int]().Future().Await(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
	t.Run("Go", func(t *testing.T) {
		f := Go(ctx, func(ctx context.Context) (int, error) {
			time.Sleep(time.Millisecond)

			return 42, nil
		})
		v, err := f.Await(ctx)
		require.NoError(t, err)
		require.Equal(t, 42, v)
	})
}

func TestOnComplete(t *testing.T) {
	t.Run("AfterCompletion", func(t *testing.T) {
		c := executor.New(t.Name()).NewContext()
		var (
			done   = make(chan struct{})
			failed error
		)
		Failed[int](errors.New("failed")).OnComplete(c, func(v int, err error) {
			failed = err
			close(done)
		})
		xtest.WaitChannelClosed(t, done)
		xtest.WaitChannelClosed(t, executor.Idle(c))
		require.EqualError(t, failed, "failed")
	})
	t.Run("BeforeCompletion", func(t *testing.T) {
		c := executor.New(t.Name()).NewContext()
		p := NewPromise[int]()
		var got []int
		done := make(chan struct{})
		p.Future().OnComplete(c, func(v int, err error) {
			got = append(got, v)
		})
		p.Future().OnComplete(c, func(v int, err error) {
			got = append(got, v*10)
			close(done)
		})
		p.Complete(3)
		xtest.WaitChannelClosed(t, done)
		xtest.WaitChannelClosed(t, executor.Idle(c))
		require.Equal(t, []int{3, 30}, got)
	})
	t.Run("Immediate", func(t *testing.T) {
		var called bool
		Completed(1).OnComplete(executor.Immediate, func(int, error) {
			called = true
		})
		require.True(t, called)
	})
}
