package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-process ObjectStore used by tests and local
// development. FailKeys lets tests inject per-key delete failures.
type MemoryStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	baseURL  string
	FailKeys map[string]bool
	ListErr  error
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (m *MemoryStore) EnsureBucket(_ context.Context) error { return nil }

func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	pfx := strings.TrimLeft(prefix, "/")
	if pfx != "" && !strings.HasSuffix(pfx, "/") {
		pfx += "/"
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.objects {
		if strings.HasPrefix(k, pfx) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Upload(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.objects[key] = data
	m.mu.Unlock()
	return m.PublicURL(key), nil
}

func (m *MemoryStore) Remove(_ context.Context, keys []string) ([]string, []error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted []string
	var errs []error
	for _, k := range keys {
		if m.FailKeys[k] {
			errs = append(errs, fmt.Errorf("storage/memory: delete %s: injected failure", k))
			continue
		}
		// Deleting a missing key is a no-op, same as S3.
		delete(m.objects, k)
		deleted = append(deleted, k)
	}
	return deleted, errs
}

func (m *MemoryStore) PublicURL(key string) string {
	return m.baseURL + "/" + strings.TrimLeft(key, "/")
}

// Has reports whether a key currently exists.
func (m *MemoryStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Len returns the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
