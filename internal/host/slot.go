package host

import (
	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"
)

var _ ports.StorageSlot = (*Slot)(nil)

// Slot is the in-memory cell handed to the program for one invocation.
type Slot struct {
	meta    domain.UtxoMeta
	data    []byte
	written bool
}

// NewSlot creates a slot holding data.
func NewSlot(meta domain.UtxoMeta, data []byte) *Slot {
	return &Slot{meta: meta, data: data}
}

func (s *Slot) Meta() domain.UtxoMeta { return s.meta }

func (s *Slot) Data() []byte { return s.data }

func (s *Slot) Write(data []byte) {
	s.data = data
	s.written = true
}

// Written reports whether the program wrote to the slot.
func (s *Slot) Written() bool { return s.written }

func (s *Slot) record() ports.SlotRecord {
	return ports.SlotRecord{Meta: s.meta, Data: s.data, Exists: true}
}
