// Package host is a local stand-in for the ledger runtime. It loads the
// slots an invocation references, calls the program entrypoint and persists
// the slots only when the program succeeds.
package host

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"collateral-loan-program/internal/codec"
	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"
	"collateral-loan-program/internal/txenvelope"
	"collateral-loan-program/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
)

// Invocation is one call into the program.
type Invocation struct {
	ProgramID   domain.ProgramID
	UTXOs       []domain.UtxoMeta
	Instruction []byte
}

// SlotState is a slot's contents after a successful invocation.
type SlotState struct {
	UTXO    string          `json:"utxo"`
	Data    string          `json:"data"`
	Account *domain.Account `json:"account,omitempty"`
}

// Receipt describes a successful invocation.
type Receipt struct {
	ID          uuid.UUID   `json:"id"`
	ProgramID   string      `json:"program_id"`
	TxID        string      `json:"txid"`
	Output      string      `json:"output"`
	StateDigest string      `json:"state_digest"`
	Slots       []SlotState `json:"slots"`
}

// Options tunes slot loading.
type Options struct {
	// RequireExisting rejects UTXOs that have no stored slot yet.
	RequireExisting bool
}

// Runtime drives invocations against a SlotStore.
type Runtime struct {
	store   ports.SlotStore
	process ports.ProcessFunc
	opts    Options
	log     zerolog.Logger
}

// NewRuntime creates a Runtime calling process for every invocation.
func NewRuntime(store ports.SlotStore, process ports.ProcessFunc, opts Options, log zerolog.Logger) *Runtime {
	return &Runtime{
		store:   store,
		process: process,
		opts:    opts,
		log:     log,
	}
}

// Invoke runs one invocation. On any error no slot is persisted.
func (r *Runtime) Invoke(ctx context.Context, inv Invocation) (*Receipt, error) {
	id := uuid.New()
	log := r.log.With().Str("invocation_id", id.String()).Logger()

	slots, err := r.loadSlots(ctx, inv.UTXOs)
	if err != nil {
		log.Warn().Err(err).Msg("loading slots failed")
		return nil, err
	}

	storage := make([]ports.StorageSlot, len(slots))
	for i, s := range slots {
		storage[i] = s
	}

	output, err := r.process(inv.ProgramID, storage, inv.Instruction)
	if err != nil {
		log.Info().Err(err).Str("code", apperror.CodeOf(err)).Msg("invocation rejected")
		return nil, err
	}

	records := make([]ports.SlotRecord, len(slots))
	for i, s := range slots {
		records[i] = s.record()
	}
	if err := r.store.Save(ctx, records); err != nil {
		log.Error().Err(err).Msg("persisting slots failed")
		return nil, apperror.ErrStorage(err)
	}

	receipt, err := buildReceipt(id, inv.ProgramID, output, slots)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("program_id", receipt.ProgramID).
		Str("txid", receipt.TxID).
		Int("slots", len(slots)).
		Str("state_digest", receipt.StateDigest).
		Msg("invocation committed")

	return receipt, nil
}

// Seed stores the snapshot of account in every listed slot, bypassing the
// program. It is a devnet convenience for funding an account.
func (r *Runtime) Seed(ctx context.Context, utxos []domain.UtxoMeta, account domain.Account) error {
	snapshot, err := codec.EncodeAccount(account)
	if err != nil {
		return err
	}
	records := make([]ports.SlotRecord, len(utxos))
	for i, m := range utxos {
		records[i] = ports.SlotRecord{Meta: m, Data: snapshot, Exists: true}
	}
	if err := r.store.Save(ctx, records); err != nil {
		return apperror.ErrStorage(err)
	}
	r.log.Info().Str("address", account.Address).Uint32("balance", account.Balance).Int("slots", len(utxos)).Msg("slots seeded")
	return nil
}

func (r *Runtime) loadSlots(ctx context.Context, utxos []domain.UtxoMeta) ([]*Slot, error) {
	seen := make(map[domain.UtxoMeta]struct{}, len(utxos))
	for _, m := range utxos {
		if _, dup := seen[m]; dup {
			return nil, apperror.ErrDuplicateSlot(m.String())
		}
		seen[m] = struct{}{}
	}

	records, err := r.store.Load(ctx, utxos)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	if len(records) != len(utxos) {
		return nil, apperror.InternalError(fmt.Errorf("store returned %d records for %d utxos", len(records), len(utxos)))
	}

	slots := make([]*Slot, len(records))
	for i, rec := range records {
		if !rec.Exists && r.opts.RequireExisting {
			return nil, apperror.ErrSlotNotFound(utxos[i].String())
		}
		slots[i] = NewSlot(utxos[i], rec.Data)
	}
	return slots, nil
}

func buildReceipt(id uuid.UUID, programID domain.ProgramID, output []byte, slots []*Slot) (*Receipt, error) {
	tx, err := txenvelope.Parse(output)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("program returned an invalid transaction: %w", err))
	}

	receipt := &Receipt{
		ID:          id,
		ProgramID:   programID.String(),
		TxID:        txenvelope.TxID(tx).String(),
		Output:      hex.EncodeToString(output),
		StateDigest: hex.EncodeToString(StateDigest(slots)),
		Slots:       make([]SlotState, len(slots)),
	}
	for i, s := range slots {
		state := SlotState{UTXO: s.meta.String(), Data: hex.EncodeToString(s.data)}
		if acc, err := codec.DecodeAccount(s.data); err == nil {
			state.Account = &acc
		}
		receipt.Slots[i] = state
	}
	return receipt, nil
}

// StateDigest is BLAKE2b-256 over meta || u32 length || data of every slot,
// in order. Two hosts agree on the post-state iff their digests match.
func StateDigest(slots []*Slot) []byte {
	h, _ := blake2b.New256(nil)
	var n [4]byte
	for _, s := range slots {
		h.Write(s.meta.Bytes())
		binary.LittleEndian.PutUint32(n[:], uint32(len(s.data)))
		h.Write(n[:])
		h.Write(s.data)
	}
	return h.Sum(nil)
}
