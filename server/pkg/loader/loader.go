package loader

import (
	"context"
	"sync"
	"time"
)

// BatchFunc грузит записи для набора ключей одним запросом.
// Отсутствующие ключи в map просто не встречаются.
type BatchFunc[K comparable, V any] func(ctx context.Context, keys []K) (map[K]V, error)

// Loader коалесцирует одиночные Load по ключу в один bulk-запрос.
// Живет в рамках одного HTTP-запроса, между запросами не переиспользуется.
type Loader[K comparable, V any] struct {
	fetch    BatchFunc[K, V]
	wait     time.Duration
	maxBatch int

	mu    sync.Mutex
	batch *batch[K, V]
	cache map[K]*thunk[V]
}

type thunk[V any] struct {
	done chan struct{}
	val  V
	err  error
}

type batch[K comparable, V any] struct {
	keys   []K
	thunks map[K]*thunk[V]
}

// New создает loader: окно коалесцирования wait, не больше maxBatch ключей
// в одном запросе к хранилищу.
func New[K comparable, V any](fetch BatchFunc[K, V], wait time.Duration, maxBatch int) *Loader[K, V] {
	return &Loader[K, V]{
		fetch:    fetch,
		wait:     wait,
		maxBatch: maxBatch,
		cache:    make(map[K]*thunk[V]),
	}
}

// Load возвращает запись по ключу. Для отсутствующего ключа — zero value
// без ошибки: решает вызывающий, является ли это ошибкой.
func (l *Loader[K, V]) Load(ctx context.Context, key K) (V, error) {
	return l.enqueue(ctx, key).await(ctx)
}

// LoadMany возвращает записи в порядке переданных ключей,
// zero value на месте отсутствующих.
func (l *Loader[K, V]) LoadMany(ctx context.Context, keys []K) ([]V, error) {
	thunks := make([]*thunk[V], len(keys))
	for i, key := range keys {
		thunks[i] = l.enqueue(ctx, key)
	}
	out := make([]V, len(keys))
	for i, t := range thunks {
		v, err := t.await(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Prime кладет уже известную запись в кэш запроса
func (l *Loader[K, V]) Prime(key K, val V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cache[key]; ok {
		return
	}
	t := &thunk[V]{done: make(chan struct{}), val: val}
	close(t.done)
	l.cache[key] = t
}

// enqueue регистрирует ключ в текущем батче, не дожидаясь результата
func (l *Loader[K, V]) enqueue(ctx context.Context, key K) *thunk[V] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.cache[key]; ok {
		return t
	}

	t := &thunk[V]{done: make(chan struct{})}
	l.cache[key] = t

	if l.batch == nil {
		b := &batch[K, V]{thunks: make(map[K]*thunk[V])}
		l.batch = b
		go l.drainAfter(ctx, b)
	}
	l.batch.keys = append(l.batch.keys, key)
	l.batch.thunks[key] = t

	if len(l.batch.keys) >= l.maxBatch {
		b := l.batch
		l.batch = nil
		go l.dispatch(ctx, b)
	}
	return t
}

// drainAfter закрывает окно коалесцирования по таймеру
func (l *Loader[K, V]) drainAfter(ctx context.Context, b *batch[K, V]) {
	timer := time.NewTimer(l.wait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	l.mu.Lock()
	if l.batch == b {
		l.batch = nil
	} else {
		// батч уже отправлен по maxBatch
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	l.dispatch(ctx, b)
}

func (l *Loader[K, V]) dispatch(ctx context.Context, b *batch[K, V]) {
	records, err := l.fetch(ctx, b.keys)
	for key, t := range b.thunks {
		if err != nil {
			t.err = err
		} else {
			t.val = records[key]
		}
		close(t.done)
	}
}

func (t *thunk[V]) await(ctx context.Context) (V, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
