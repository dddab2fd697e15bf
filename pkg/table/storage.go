package table

import (
	"context"
	"sync"
)

// MemoryStorage 内存布局存储，测试以及无持久化后端时的兜底实现
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage 创建内存布局存储
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Get 读取布局数据，不存在时返回nil
func (m *MemoryStorage) Get(ctx context.Context, bizKey string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[bizKey]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set 写入布局数据
func (m *MemoryStorage) Set(ctx context.Context, bizKey string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.data[bizKey] = stored
	return nil
}

// Del 删除布局数据
func (m *MemoryStorage) Del(ctx context.Context, bizKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, bizKey)
	return nil
}
