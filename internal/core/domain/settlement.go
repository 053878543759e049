package domain

import (
	"math/bits"

	"collateral-loan-program/pkg/apperror"
)

// CollateralRatioDenominator divides the collateral value to get the upfront
// share the requester pays.
const CollateralRatioDenominator uint32 = 5

// RequiredPayment is floor(CollateralValue / 5) + Fee.
// It fails with ARI_001 when the sum does not fit in 32 bits.
func RequiredPayment(req LoanRequest) (uint32, error) {
	share := req.CollateralValue / CollateralRatioDenominator
	total, carry := bits.Add32(share, req.Fee, 0)
	if carry != 0 {
		return 0, apperror.ErrOverflow("required payment")
	}
	return total, nil
}

// Settle applies the loan settlement rule and returns the requester's
// post-state. On error the request's account is left as it was.
func Settle(req LoanRequest) (Account, error) {
	required, err := RequiredPayment(req)
	if err != nil {
		return Account{}, err
	}
	if req.RequesterAccount.Balance < required {
		return Account{}, apperror.ErrInsufficientFunds()
	}
	return req.RequesterAccount.Debit(required)
}
