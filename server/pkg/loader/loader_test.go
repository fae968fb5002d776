package loader

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCountingLoader(calls *int32, batches *[][]int) *Loader[int, string] {
	var mu sync.Mutex
	fetch := func(ctx context.Context, keys []int) (map[int]string, error) {
		atomic.AddInt32(calls, 1)
		mu.Lock()
		*batches = append(*batches, keys)
		mu.Unlock()
		out := make(map[int]string, len(keys))
		for _, k := range keys {
			if k < 100 {
				out[k] = fmt.Sprintf("value-%d", k)
			}
		}
		return out, nil
	}
	return New(fetch, 2*time.Millisecond, 10)
}

func TestLoader_BatchesConcurrentLoads(t *testing.T) {
	var calls int32
	var batches [][]int
	l := newCountingLoader(&calls, &batches)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := l.Load(ctx, i+1)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent loads should coalesce into one fetch")
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("value-%d", i+1), results[i])
	}
}

func TestLoader_DeduplicatesRepeatedKeys(t *testing.T) {
	var calls int32
	var batches [][]int
	l := newCountingLoader(&calls, &batches)
	ctx := context.Background()

	v1, err := l.Load(ctx, 7)
	require.NoError(t, err)
	v2, err := l.Load(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Len(t, batches, 1)
	assert.Equal(t, []int{7}, batches[0], "repeated key should appear once in the batch")
}

func TestLoader_MissingKeyReturnsZeroValue(t *testing.T) {
	var calls int32
	var batches [][]int
	l := newCountingLoader(&calls, &batches)

	v, err := l.Load(context.Background(), 999)

	assert.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestLoader_LoadManyPreservesOrder(t *testing.T) {
	var calls int32
	var batches [][]int
	l := newCountingLoader(&calls, &batches)

	got, err := l.LoadMany(context.Background(), []int{3, 999, 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"value-3", "", "value-1"}, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLoader_MaxBatchSplitsFetches(t *testing.T) {
	var calls int32
	var batches [][]int
	var mu sync.Mutex
	fetch := func(ctx context.Context, keys []int) (map[int]string, error) {
		atomic.AddInt32(&calls, 1)
		mu.Lock()
		batches = append(batches, keys)
		mu.Unlock()
		out := make(map[int]string, len(keys))
		for _, k := range keys {
			out[k] = fmt.Sprintf("value-%d", k)
		}
		return out, nil
	}
	l := New(fetch, 2*time.Millisecond, 3)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 7; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := l.Load(ctx, i)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	total := 0
	for _, b := range batches {
		assert.LessOrEqual(t, len(b), 3)
		total += len(b)
	}
	assert.Equal(t, 7, total)
}

func TestLoader_FetchErrorPropagates(t *testing.T) {
	fetch := func(ctx context.Context, keys []int) (map[int]string, error) {
		return nil, fmt.Errorf("storage down")
	}
	l := New(fetch, time.Millisecond, 10)

	_, err := l.Load(context.Background(), 1)

	assert.EqualError(t, err, "storage down")
}

func TestLoader_PrimeSkipsFetch(t *testing.T) {
	var calls int32
	var batches [][]int
	l := newCountingLoader(&calls, &batches)

	l.Prime(5, "primed")
	v, err := l.Load(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "primed", v)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
