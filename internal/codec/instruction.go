package codec

import (
	"fmt"

	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/pkg/apperror"
)

// DecodeInstruction parses an instruction payload. It fails with a DEC_*
// error on truncated input, an unknown tag, a malformed field or trailing
// bytes.
func DecodeInstruction(b []byte) (domain.Instruction, error) {
	r := NewReader(b)
	tag, err := r.U8("instruction tag")
	if err != nil {
		return nil, err
	}

	var ins domain.Instruction
	switch domain.InstructionTag(tag) {
	case domain.TagBorrowLoan:
		req, err := readLoanRequest(r)
		if err != nil {
			return nil, err
		}
		ins = domain.BorrowLoan{Request: req}
	default:
		return nil, apperror.ErrUnknownTag(tag)
	}

	if err := r.Finish(); err != nil {
		return nil, err
	}
	return ins, nil
}

// EncodeInstruction builds an instruction payload.
func EncodeInstruction(ins domain.Instruction) ([]byte, error) {
	switch v := ins.(type) {
	case domain.BorrowLoan:
		w := NewWriter(1 + loanRequestSize(v.Request))
		w.U8(uint8(domain.TagBorrowLoan))
		writeLoanRequest(w, v.Request)
		return w.Result()
	default:
		return nil, fmt.Errorf("encode instruction: unsupported type %T", ins)
	}
}

func loanRequestSize(req domain.LoanRequest) int {
	return AccountSize(req.RequesterAccount) + 4 + len(req.CollateralID) + 6*4 + 4 + len(req.SettlementTx)
}

func writeLoanRequest(w *Writer, req domain.LoanRequest) {
	writeAccount(w, req.RequesterAccount)
	w.String(req.CollateralID)
	w.U32(req.CollateralValue)
	w.U32(req.RequesterUpfrontAmount)
	w.U32(req.LoanAmount)
	w.U32(req.RepayDuration)
	w.U32(req.Interest)
	w.U32(req.Fee)
	w.Bytes(req.SettlementTx)
}

func readLoanRequest(r *Reader) (domain.LoanRequest, error) {
	var (
		req domain.LoanRequest
		err error
	)
	if req.RequesterAccount, err = readAccount(r); err != nil {
		return req, err
	}
	if req.CollateralID, err = r.String("collateral_id"); err != nil {
		return req, err
	}
	fields := []struct {
		name string
		dst  *uint32
	}{
		{"collateral_value", &req.CollateralValue},
		{"requester_upfront_amount", &req.RequesterUpfrontAmount},
		{"loan_amount", &req.LoanAmount},
		{"repay_duration", &req.RepayDuration},
		{"interest", &req.Interest},
		{"fee", &req.Fee},
	}
	for _, f := range fields {
		if *f.dst, err = r.U32(f.name); err != nil {
			return req, err
		}
	}
	if req.SettlementTx, err = r.Bytes("settlement_tx"); err != nil {
		return req, err
	}
	return req, nil
}
