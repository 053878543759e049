package domain

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// UtxoMetaSize is the byte length of UtxoMeta.Bytes.
const UtxoMetaSize = chainhash.HashSize + 4

// UtxoMeta identifies a storage slot by the transaction output backing it.
type UtxoMeta struct {
	TxID chainhash.Hash
	Vout uint32
}

// String renders the outpoint as "txid:vout" with the txid in display order.
func (m UtxoMeta) String() string {
	return m.TxID.String() + ":" + strconv.FormatUint(uint64(m.Vout), 10)
}

// Bytes returns the canonical 36-byte form: txid followed by vout little-endian.
func (m UtxoMeta) Bytes() []byte {
	b := make([]byte, UtxoMetaSize)
	copy(b, m.TxID[:])
	binary.LittleEndian.PutUint32(b[chainhash.HashSize:], m.Vout)
	return b
}

// ParseUtxoMeta parses the "txid:vout" form produced by String.
func ParseUtxoMeta(s string) (UtxoMeta, error) {
	txid, vout, ok := strings.Cut(s, ":")
	if !ok {
		return UtxoMeta{}, fmt.Errorf("utxo %q: missing ':vout'", s)
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil || len(txid) != 2*chainhash.HashSize {
		return UtxoMeta{}, fmt.Errorf("utxo %q: invalid txid", s)
	}
	n, err := strconv.ParseUint(vout, 10, 32)
	if err != nil {
		return UtxoMeta{}, fmt.Errorf("utxo %q: invalid vout: %w", s, err)
	}
	return UtxoMeta{TxID: *hash, Vout: uint32(n)}, nil
}

// ProgramID is the 32-byte public key of an on-chain program.
type ProgramID [32]byte

func (p ProgramID) String() string {
	return hex.EncodeToString(p[:])
}

// ParseProgramID decodes a 64-character hex program id.
func ParseProgramID(s string) (ProgramID, error) {
	var id ProgramID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("program id: %w", err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("program id: want %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}
