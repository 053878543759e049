// Package txenvelope validates the settlement transaction embedded in an
// instruction by round-tripping it through Bitcoin consensus serialization.
// Transaction contents are not inspected.
package txenvelope

import (
	"bytes"

	"collateral-loan-program/pkg/apperror"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Parse decodes a consensus-encoded transaction (segwit aware). Malformed
// input, including non-canonical varints and unread trailing bytes, fails
// with a FMT_* error.
func Parse(b []byte) (*wire.MsgTx, error) {
	r := bytes.NewReader(b)
	tx := new(wire.MsgTx)
	if err := tx.Deserialize(r); err != nil {
		return nil, apperror.ErrInvalidTransaction(err)
	}
	if n := r.Len(); n != 0 {
		return nil, apperror.ErrTransactionTrailingBytes(n)
	}
	return tx, nil
}

// Serialize returns the consensus encoding of tx, including witness data.
func Serialize(tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return nil, apperror.InternalError(err)
	}
	return buf.Bytes(), nil
}

// TxID returns the transaction id (witness data excluded).
func TxID(tx *wire.MsgTx) chainhash.Hash {
	return tx.TxHash()
}
