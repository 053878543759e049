// Package program is the collateral loan program: it decodes an instruction,
// settles it and commits the resulting account into the host's slots.
package program

import (
	"collateral-loan-program/internal/codec"
	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"
	"collateral-loan-program/internal/txenvelope"

	"github.com/rs/zerolog"
)

var _ domain.InstructionHandler = (*Program)(nil)

// Program holds no state between invocations.
type Program struct {
	log zerolog.Logger
}

// New creates a Program. Log entries carry only values derived from the
// invocation inputs.
func New(log zerolog.Logger) *Program {
	return &Program{log: log}
}

// Handle runs one invocation and returns the re-serialized settlement
// transaction. Every check runs before the first slot write, so a failed
// invocation leaves all slots untouched.
func (p *Program) Handle(programID domain.ProgramID, slots []ports.StorageSlot, instruction []byte) ([]byte, error) {
	ins, err := codec.DecodeInstruction(instruction)
	if err != nil {
		p.log.Debug().Err(err).Int("payload_len", len(instruction)).Msg("instruction rejected")
		return nil, err
	}

	tx, err := txenvelope.Parse(ins.SettlementTx())
	if err != nil {
		p.log.Debug().Err(err).Str("instruction", ins.Tag().String()).Msg("settlement tx rejected")
		return nil, err
	}
	output, err := txenvelope.Serialize(tx)
	if err != nil {
		return nil, err
	}

	account, err := p.Dispatch(ins)
	if err != nil {
		p.log.Debug().Err(err).Str("instruction", ins.Tag().String()).Msg("settlement failed")
		return nil, err
	}

	if err := Commit(slots, account); err != nil {
		return nil, err
	}

	p.log.Debug().
		Str("program_id", programID.String()).
		Str("instruction", ins.Tag().String()).
		Str("address", account.Address).
		Uint32("balance", account.Balance).
		Int("slots", len(slots)).
		Str("txid", txenvelope.TxID(tx).String()).
		Msg("instruction settled")

	return output, nil
}

// Dispatch routes ins to its handler and returns the settled account.
func (p *Program) Dispatch(ins domain.Instruction) (domain.Account, error) {
	return ins.Accept(p)
}

// BorrowLoan settles a loan request against the requester's balance.
func (p *Program) BorrowLoan(req domain.LoanRequest) (domain.Account, error) {
	return domain.Settle(req)
}
