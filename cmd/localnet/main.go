package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"collateral-loan-program/config"
	"collateral-loan-program/internal/adapter/storage/memory"
	pgStorage "collateral-loan-program/internal/adapter/storage/postgres"
	redisStorage "collateral-loan-program/internal/adapter/storage/redis"
	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"
	"collateral-loan-program/internal/entrypoint"
	"collateral-loan-program/internal/host"
	"collateral-loan-program/internal/program"
	"collateral-loan-program/pkg/logger"
	"collateral-loan-program/pkg/response"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

type options struct {
	configPath  string
	instruction string
	utxos       []string
	seedAccount string
}

func main() {
	flags := pflag.NewFlagSet("localnet", pflag.ExitOnError)
	var opts options
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.instruction, "instruction", "", "hex-encoded instruction payload")
	flags.StringArrayVar(&opts.utxos, "utxo", nil, "storage slot as txid:vout (repeatable, ordered)")
	flags.StringVar(&opts.seedAccount, "seed-account", "", "write address:balance into every slot before invoking")
	flags.String("program.id", "", "program id (64 hex characters)")
	flags.String("storage.backend", "", "slot store backend: memory, redis, postgres")
	flags.String("log.level", "", "log level: debug, info, warn, error")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(opts.configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := run(cfg, opts, log); err != nil {
		_ = response.Error(os.Stdout, "", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, opts options, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	programID, err := domain.ParseProgramID(cfg.Program.ID)
	if err != nil {
		return err
	}
	utxos := make([]domain.UtxoMeta, 0, len(opts.utxos))
	for _, s := range opts.utxos {
		m, err := domain.ParseUtxoMeta(s)
		if err != nil {
			return err
		}
		utxos = append(utxos, m)
	}
	instruction, err := hex.DecodeString(opts.instruction)
	if err != nil {
		return fmt.Errorf("instruction: %w", err)
	}

	store, health, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := health.Ping(ctx); err != nil {
		return fmt.Errorf("%s unhealthy: %w", health.Name(), err)
	}

	entrypoint.Register(program.New(logger.Component(log, "program")).Handle)

	rt := host.NewRuntime(store, entrypoint.Invoke, host.Options{
		RequireExisting: cfg.Storage.RequireExisting,
	}, logger.Component(log, "host"))

	if opts.seedAccount != "" {
		account, err := parseAccount(opts.seedAccount)
		if err != nil {
			return err
		}
		if err := rt.Seed(ctx, utxos, account); err != nil {
			return err
		}
	}

	receipt, err := rt.Invoke(ctx, host.Invocation{
		ProgramID:   programID,
		UTXOs:       utxos,
		Instruction: instruction,
	})
	if err != nil {
		return err
	}
	return response.OK(os.Stdout, receipt.ID.String(), receipt)
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SlotStore, ports.HealthChecker, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return redisStorage.NewSlotStore(rdb), redisStorage.NewHealthCheck(rdb), func() { rdb.Close() }, nil
	case config.BackendPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.Storage.Migrate {
			if err := pgStorage.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, nil, err
			}
		}
		return pgStorage.NewSlotStore(pool), pgStorage.NewHealthCheck(pool), pool.Close, nil
	default:
		store := memory.NewSlotStore()
		return store, store, func() {}, nil
	}
}

// parseAccount reads "address:balance"; the balance follows the last colon.
func parseAccount(s string) (domain.Account, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return domain.Account{}, fmt.Errorf("seed account %q: want address:balance", s)
	}
	balance, err := strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil {
		return domain.Account{}, fmt.Errorf("seed account %q: %w", s, err)
	}
	return domain.Account{Address: s[:i], Balance: uint32(balance)}, nil
}
