package codec

import (
	"unicode/utf8"

	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/pkg/apperror"
)

// AccountSize returns the encoded length of a.
func AccountSize(a domain.Account) int {
	return 4 + len(a.Address) + 4
}

// EncodeAccount returns the slot snapshot of a.
func EncodeAccount(a domain.Account) ([]byte, error) {
	if !utf8.ValidString(a.Address) {
		return nil, apperror.ErrMalformedField("address", errInvalidUTF8)
	}
	w := NewWriter(AccountSize(a))
	writeAccount(w, a)
	return w.Result()
}

// DecodeAccount parses a slot snapshot. The whole input must be consumed.
func DecodeAccount(b []byte) (domain.Account, error) {
	r := NewReader(b)
	a, err := readAccount(r)
	if err != nil {
		return domain.Account{}, err
	}
	if err := r.Finish(); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

func writeAccount(w *Writer, a domain.Account) {
	w.String(a.Address)
	w.U32(a.Balance)
}

func readAccount(r *Reader) (domain.Account, error) {
	var (
		a   domain.Account
		err error
	)
	if a.Address, err = r.String("address"); err != nil {
		return a, err
	}
	if a.Balance, err = r.U32("balance"); err != nil {
		return a, err
	}
	return a, nil
}
