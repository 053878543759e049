package redis

import (
	"context"
	"fmt"

	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// SlotStore implements ports.SlotStore on Redis strings, one key per UTXO.
type SlotStore struct {
	client *goredis.Client
	prefix string
}

// NewSlotStore creates a new Redis-backed slot store.
func NewSlotStore(client *goredis.Client) *SlotStore {
	return &SlotStore{
		client: client,
		prefix: "utxo:",
	}
}

func (s *SlotStore) key(m domain.UtxoMeta) string {
	return s.prefix + m.String()
}

// Load fetches all slots with a single MGET.
func (s *SlotStore) Load(ctx context.Context, metas []domain.UtxoMeta) ([]ports.SlotRecord, error) {
	records := make([]ports.SlotRecord, len(metas))
	if len(metas) == 0 {
		return records, nil
	}

	keys := make([]string, len(metas))
	for i, m := range metas {
		keys[i] = s.key(m)
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis slot load: %w", err)
	}

	for i, m := range metas {
		records[i] = ports.SlotRecord{Meta: m}
		switch v := vals[i].(type) {
		case nil:
		case string:
			records[i].Data = []byte(v)
			records[i].Exists = true
		default:
			return nil, fmt.Errorf("redis slot load: unexpected %T for %s", v, keys[i])
		}
	}
	return records, nil
}

// Save writes all slots in one MULTI/EXEC block.
func (s *SlotStore) Save(ctx context.Context, records []ports.SlotRecord) error {
	if len(records) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, r := range records {
			pipe.Set(ctx, s.key(r.Meta), r.Data, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis slot save: %w", err)
	}
	return nil
}
