package domain

import (
	"math/bits"

	"collateral-loan-program/pkg/apperror"
)

// Account is a participant's ledger-visible balance record.
// Address is immutable; Balance is only changed by settlement rules.
type Account struct {
	Address string `json:"address"`
	Balance uint32 `json:"balance"`
}

// Debit returns a copy of the account with amount removed from its balance.
// The receiver is never modified.
func (a Account) Debit(amount uint32) (Account, error) {
	if a.Balance < amount {
		return a, apperror.ErrInsufficientFunds()
	}
	next, borrow := bits.Sub32(a.Balance, amount, 0)
	if borrow != 0 {
		return a, apperror.ErrUnderflow("account debit")
	}
	a.Balance = next
	return a, nil
}
