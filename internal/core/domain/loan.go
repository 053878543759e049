package domain

// LoanRequest is the payload of a BorrowLoan instruction. It lives for one
// invocation only.
//
// LoanAmount, RequesterUpfrontAmount, RepayDuration and Interest are carried
// and encoded but take no part in settlement.
type LoanRequest struct {
	RequesterAccount       Account `json:"requester_account"`
	CollateralID           string  `json:"collateral_id"`
	CollateralValue        uint32  `json:"collateral_value"`
	RequesterUpfrontAmount uint32  `json:"requester_upfront_amount"`
	LoanAmount             uint32  `json:"loan_amount"`
	RepayDuration          uint32  `json:"repay_duration"`
	Interest               uint32  `json:"interest"`
	Fee                    uint32  `json:"fee"`
	SettlementTx           []byte  `json:"settlement_tx"`
}
