package postgres

import (
	"context"
	"errors"
	"fmt"

	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// SlotStore implements ports.SlotStore on the utxo_slots table.
type SlotStore struct {
	pool Pool
}

// NewSlotStore creates a new SlotStore.
func NewSlotStore(pool Pool) *SlotStore {
	return &SlotStore{pool: pool}
}

// Load reads each slot in order. Missing rows come back with Exists false.
func (s *SlotStore) Load(ctx context.Context, metas []domain.UtxoMeta) ([]ports.SlotRecord, error) {
	query := `SELECT data FROM utxo_slots WHERE txid = $1 AND vout = $2`

	records := make([]ports.SlotRecord, len(metas))
	for i, m := range metas {
		records[i] = ports.SlotRecord{Meta: m}
		var data []byte
		err := s.pool.QueryRow(ctx, query, m.TxID[:], int64(m.Vout)).Scan(&data)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("load slot %s: %w", m, err)
		}
		records[i].Data = data
		records[i].Exists = true
	}
	return records, nil
}

// Save upserts all records inside one database transaction.
func (s *SlotStore) Save(ctx context.Context, records []ports.SlotRecord) error {
	query := `INSERT INTO utxo_slots (txid, vout, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (txid, vout) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, r := range records {
		data := r.Data
		if data == nil {
			data = []byte{}
		}
		if _, err := tx.Exec(ctx, query, r.Meta.TxID[:], int64(r.Meta.Vout), data); err != nil {
			return fmt.Errorf("save slot %s: %w", r.Meta, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
