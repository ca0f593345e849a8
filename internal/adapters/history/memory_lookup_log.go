package history

import (
	"context"
	"great-circle-service/internal/domain"
	"sync"
)

// MemoryLookupLog is an in-process ring of recent lookups, used when no
// external store is configured. Safe for concurrent use.
type MemoryLookupLog struct {
	mu      sync.Mutex
	entries []domain.Lookup
	next    int // slot the next Record writes once the ring is full
	maxSize int
}

// NewMemoryLookupLog keeps the newest maxEntries lookups; maxEntries <= 0 keeps all.
func NewMemoryLookupLog(maxEntries int) *MemoryLookupLog {
	m := &MemoryLookupLog{maxSize: maxEntries}
	if maxEntries > 0 {
		m.entries = make([]domain.Lookup, 0, maxEntries)
	}
	return m
}

func (m *MemoryLookupLog) Record(_ context.Context, l domain.Lookup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSize <= 0 || len(m.entries) < m.maxSize {
		m.entries = append(m.entries, l)
		return nil
	}

	m.entries[m.next] = l
	m.next = (m.next + 1) % m.maxSize
	return nil
}

func (m *MemoryLookupLog) ListRecent(_ context.Context, limit int) ([]domain.Lookup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.entries)
	if limit <= 0 || n == 0 {
		return []domain.Lookup{}, nil
	}
	if limit > n {
		limit = n
	}

	// Newest entry sits just before next (or at the tail before the ring fills).
	newest := n - 1
	if m.maxSize > 0 && n == m.maxSize {
		newest = (m.next - 1 + n) % n
	}

	out := make([]domain.Lookup, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, m.entries[(newest-i+n)%n])
	}
	return out, nil
}
