package domain

// InstructionTag is the leading byte of an encoded instruction.
// Assigned values are permanent; new kinds take the next free tag.
type InstructionTag uint8

const (
	TagBorrowLoan InstructionTag = 0
)

func (t InstructionTag) String() string {
	switch t {
	case TagBorrowLoan:
		return "BorrowLoan"
	default:
		return "Unknown"
	}
}

// InstructionHandler has one method per instruction kind. Adding a kind adds
// a method here, so every handler stops compiling until it covers the new case.
type InstructionHandler interface {
	BorrowLoan(req LoanRequest) (Account, error)
}

// Instruction is the closed set of operations the program accepts.
// Only types in this package can implement it.
type Instruction interface {
	Tag() InstructionTag
	// SettlementTx returns the embedded ledger transaction every kind carries.
	SettlementTx() []byte
	// Accept routes the instruction to the matching handler method.
	Accept(h InstructionHandler) (Account, error)

	sealed()
}

// BorrowLoan requests a collateralized loan against the requester's balance.
type BorrowLoan struct {
	Request LoanRequest
}

func (BorrowLoan) Tag() InstructionTag { return TagBorrowLoan }

func (b BorrowLoan) SettlementTx() []byte { return b.Request.SettlementTx }

func (b BorrowLoan) Accept(h InstructionHandler) (Account, error) {
	return h.BorrowLoan(b.Request)
}

func (BorrowLoan) sealed() {}
