package ports

import (
	"context"

	"collateral-loan-program/internal/core/domain"
)

//go:generate mockgen -source=slots.go -destination=mocks/mock_slots.go -package=mocks

// StorageSlot is a host-owned cell holding one serialized account snapshot.
// The program may read and overwrite it but never creates or deletes one.
type StorageSlot interface {
	Meta() domain.UtxoMeta
	Data() []byte
	// Write replaces the slot contents. It cannot fail; the host must have
	// reserved the slot before handing it over.
	Write(data []byte)
}

// SlotRecord is a persisted slot as seen by the host runtime.
type SlotRecord struct {
	Meta   domain.UtxoMeta
	Data   []byte
	Exists bool
}

// SlotStore persists slot contents between invocations.
type SlotStore interface {
	// Load returns one record per meta, in the same order. Missing slots come
	// back with Exists false and no data.
	Load(ctx context.Context, metas []domain.UtxoMeta) ([]SlotRecord, error)
	// Save writes all records atomically where the backend allows it.
	Save(ctx context.Context, records []SlotRecord) error
}

// ProcessFunc is the program entrypoint signature the host invokes.
type ProcessFunc func(programID domain.ProgramID, slots []StorageSlot, instruction []byte) ([]byte, error)
