package registry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(calls *atomic.Int32, value any) Loader {
	return func(ctx context.Context) (any, error) {
		calls.Add(1)
		return value, nil
	}
}

func TestGet_ComputesOnce(t *testing.T) {
	r := New()
	var calls atomic.Int32
	r.Register("objs", countingLoader(&calls, []string{"a"}))

	assert.False(t, r.Computed("objs"))
	for i := 0; i < 5; i++ {
		v, err := r.Get(context.Background(), "objs")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, v)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, r.Computed("objs"))
}

func TestGet_ReturnsSameValue(t *testing.T) {
	r := New()
	r.Register("items", func(ctx context.Context) (any, error) {
		return &struct{ n int }{n: 1}, nil
	})

	a, err := r.Get(context.Background(), "items")
	require.NoError(t, err)
	b, err := r.Get(context.Background(), "items")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

// TestGet_ConcurrentFirstAccess verifies that goroutines racing on an
// uncomputed name share a single loader invocation and a single value.
func TestGet_ConcurrentFirstAccess(t *testing.T) {
	r := New()
	var calls atomic.Int32
	release := make(chan struct{})
	r.Register("npcs", func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return &struct{}{}, nil
	})

	const numGoroutines = 50
	results := make([]any, numGoroutines)
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := r.Get(context.Background(), "npcs")
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 1; i < numGoroutines; i++ {
		assert.Same(t, results[0], results[i], "goroutine %d saw a different value", i)
	}
}

func TestGet_FailureIsNotCached(t *testing.T) {
	r := New()
	readErr := errors.New("open enums: no such file or directory")
	var calls atomic.Int32
	r.Register("rawEnums", func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, readErr
		}
		return "ok", nil
	})

	_, err := r.Get(context.Background(), "rawEnums")
	require.ErrorIs(t, err, readErr)
	assert.False(t, r.Computed("rawEnums"))

	v, err := r.Get(context.Background(), "rawEnums")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_UnknownName(t *testing.T) {
	_, err := New().Get(context.Background(), "Objs")
	require.ErrorIs(t, err, ErrUnknownCollection)
}

func TestGet_DependentLoaders(t *testing.T) {
	r := New()
	var rawCalls atomic.Int32
	r.Register("rawEnums", countingLoader(&rawCalls, []int{1, 2, 3}))
	r.Register("enums", func(ctx context.Context) (any, error) {
		raw, err := Lookup[[]int](ctx, r, "rawEnums")
		if err != nil {
			return nil, err
		}
		return len(raw), nil
	})

	n, err := Lookup[int](context.Background(), r, "enums")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Lookup[[]int](context.Background(), r, "rawEnums")
	require.NoError(t, err)
	assert.Equal(t, int32(1), rawCalls.Load())
}

func TestLookup_WrongType(t *testing.T) {
	r := New()
	r.Register("models", func(ctx context.Context) (any, error) { return 1, nil })

	_, err := Lookup[string](context.Background(), r, "models")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holds int")
}

func TestRegister_Panics(t *testing.T) {
	r := New()
	r.Register("structs", func(ctx context.Context) (any, error) { return nil, nil })

	assert.Panics(t, func() {
		r.Register("structs", func(ctx context.Context) (any, error) { return nil, nil })
	})
	assert.Panics(t, func() { r.Register("widgets", nil) })
	assert.Equal(t, []string{"structs"}, r.Names())
}
