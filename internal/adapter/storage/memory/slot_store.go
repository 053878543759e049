package memory

import (
	"bytes"
	"context"
	"sync"

	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"
)

// SlotStore implements ports.SlotStore in process memory.
type SlotStore struct {
	mu    sync.RWMutex
	slots map[domain.UtxoMeta][]byte
}

// NewSlotStore creates an empty in-memory slot store.
func NewSlotStore() *SlotStore {
	return &SlotStore{slots: make(map[domain.UtxoMeta][]byte)}
}

// Load returns one record per meta, in order.
func (s *SlotStore) Load(_ context.Context, metas []domain.UtxoMeta) ([]ports.SlotRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]ports.SlotRecord, len(metas))
	for i, m := range metas {
		data, ok := s.slots[m]
		records[i] = ports.SlotRecord{Meta: m, Data: bytes.Clone(data), Exists: ok}
	}
	return records, nil
}

// Save stores all records under a single lock.
func (s *SlotStore) Save(_ context.Context, records []ports.SlotRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		data := r.Data
		if data == nil {
			data = []byte{}
		}
		s.slots[r.Meta] = bytes.Clone(data)
	}
	return nil
}

// Ping always succeeds.
func (s *SlotStore) Ping(context.Context) error { return nil }

// Name returns the backend name.
func (s *SlotStore) Name() string { return "memory" }
