package program

import (
	"bytes"

	"collateral-loan-program/internal/codec"
	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"
)

// Commit writes the snapshot of account into every slot, in order. The
// snapshot is encoded once up front; after that no step can fail, so either
// all slots are written or none are.
func Commit(slots []ports.StorageSlot, account domain.Account) error {
	snapshot, err := codec.EncodeAccount(account)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		slot.Write(bytes.Clone(snapshot))
	}
	return nil
}
