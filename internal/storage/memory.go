package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps links and the owner index in process memory.
// Used when neither a database DSN nor a file path is configured.
type MemoryStorage struct {
	mu    sync.RWMutex
	links map[string]LinkRecord
	index map[string][]IndexEntry
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		links: make(map[string]LinkRecord),
		index: make(map[string][]IndexEntry),
	}, nil
}

func (m *MemoryStorage) Get(_ context.Context, id string) (*LinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, exists := m.links[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *MemoryStorage) Put(_ context.Context, record LinkRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.links[record.ID] = record
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[id]; !exists {
		return ErrNotFound
	}
	delete(m.links, id)
	return nil
}

func (m *MemoryStorage) List(_ context.Context) ([]LinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]LinkRecord, 0, len(m.links))
	for _, r := range m.links {
		records = append(records, r)
	}
	return records, nil
}

func (m *MemoryStorage) ReplaceAll(_ context.Context, records []LinkRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.links = make(map[string]LinkRecord, len(records))
	for _, r := range records {
		m.links[r.ID] = r
	}
	return nil
}

func (m *MemoryStorage) UserIndex(_ context.Context, ownerID string) ([]IndexEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := m.index[ownerID]
	out := make([]IndexEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *MemoryStorage) AppendUserIndex(_ context.Context, ownerID string, entry IndexEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.index[ownerID] = append(m.index[ownerID], entry)
	return nil
}

func (m *MemoryStorage) RemoveUserIndex(_ context.Context, ownerID string, linkID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.index[ownerID]
	kept := entries[:0]
	for _, e := range entries {
		if e.LinkID != linkID {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		delete(m.index, ownerID)
		return nil
	}
	m.index[ownerID] = kept
	return nil
}

func (m *MemoryStorage) PruneUserIndex(_ context.Context, keep map[string]struct{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ownerID, entries := range m.index {
		kept := make([]IndexEntry, 0, len(entries))
		for _, e := range entries {
			if _, ok := keep[e.LinkID]; ok {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(m.index, ownerID)
			continue
		}
		m.index[ownerID] = kept
	}
	return nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}
