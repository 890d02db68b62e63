// Package storage persists the pipeline's small pieces of state (spot cache
// entry, free-use counters, A/B buckets) in redis or in process memory.
package storage

import (
	"context"
	"errors"
	"strconv"
	"sync"
)

// ErrNotFound key 不存在
var ErrNotFound = errors.New("storage: key not found")

// KV 最小键值接口
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetNX key 不存在时写入，返回是否写入成功
	SetNX(ctx context.Context, key, value string) (bool, error)
	Incr(ctx context.Context, key string) (int64, error)
	Close() error
}

// MemoryKV 进程内实现（redis 未启用或测试时使用）
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) SetNX(_ context.Context, key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value
	return true, nil
}

func (m *MemoryKV) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	if v, ok := m.data[key]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		n = parsed
	}
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (m *MemoryKV) Close() error { return nil }
