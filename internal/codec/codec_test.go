package codec

import (
	"math"
	"testing"

	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() domain.LoanRequest {
	return domain.LoanRequest{
		RequesterAccount: domain.Account{
			Address: "bc1qexyqtwyxrey8jkq9qmrnu4jtuwqkyusm5adgdn",
			Balance: 1000,
		},
		CollateralID:           "nft123",
		CollateralValue:        500,
		RequesterUpfrontAmount: 100,
		LoanAmount:             400,
		RepayDuration:          30,
		Interest:               10,
		Fee:                    20,
		SettlementTx:           []byte{0xde, 0xad, 0xbe, 0xef},
	}
}

func TestEncodeAccount_Layout(t *testing.T) {
	b, err := EncodeAccount(domain.Account{Address: "ab", Balance: 0x01020304})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x02, 0x00, 0x00, 0x00, 'a', 'b',
		0x04, 0x03, 0x02, 0x01,
	}, b)
	assert.Len(t, b, AccountSize(domain.Account{Address: "ab"}))
}

func TestAccount_RoundTrip(t *testing.T) {
	tests := []domain.Account{
		{Address: "", Balance: 0},
		{Address: "bc1qexyqtwyxrey8jkq9qmrnu4jtuwqkyusm5adgdn", Balance: 880},
		{Address: "ünïcødé", Balance: math.MaxUint32},
	}

	for _, acc := range tests {
		t.Run(acc.Address, func(t *testing.T) {
			b, err := EncodeAccount(acc)
			require.NoError(t, err)
			got, err := DecodeAccount(b)
			require.NoError(t, err)
			assert.Equal(t, acc, got)
		})
	}
}

func TestEncodeAccount_Deterministic(t *testing.T) {
	acc := domain.Account{Address: "addr", Balance: 42}
	a, err := EncodeAccount(acc)
	require.NoError(t, err)
	b, err := EncodeAccount(acc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeAccount_InvalidUTF8(t *testing.T) {
	_, err := EncodeAccount(domain.Account{Address: string([]byte{0xff, 0xfe})})
	assert.True(t, apperror.Is(err, "DEC_003"))
}

func TestDecodeAccount_TrailingBytes(t *testing.T) {
	b, err := EncodeAccount(domain.Account{Address: "a", Balance: 1})
	require.NoError(t, err)

	_, err = DecodeAccount(append(b, 0x00))
	assert.True(t, apperror.Is(err, "DEC_004"))
}

func TestInstruction_RoundTrip(t *testing.T) {
	req := sampleRequest()
	b, err := EncodeInstruction(domain.BorrowLoan{Request: req})
	require.NoError(t, err)
	assert.Equal(t, byte(domain.TagBorrowLoan), b[0])

	ins, err := DecodeInstruction(b)
	require.NoError(t, err)
	borrow, ok := ins.(domain.BorrowLoan)
	require.True(t, ok)
	assert.Equal(t, req, borrow.Request)
	assert.Equal(t, req.SettlementTx, ins.SettlementTx())
}

func TestInstruction_EmptySettlementTx(t *testing.T) {
	req := sampleRequest()
	req.SettlementTx = nil
	b, err := EncodeInstruction(domain.BorrowLoan{Request: req})
	require.NoError(t, err)

	ins, err := DecodeInstruction(b)
	require.NoError(t, err)
	assert.Empty(t, ins.SettlementTx())
}

func TestInstruction_FieldOrder(t *testing.T) {
	req := domain.LoanRequest{
		RequesterAccount:       domain.Account{Address: "a", Balance: 1},
		CollateralID:           "c",
		CollateralValue:        2,
		RequesterUpfrontAmount: 3,
		LoanAmount:             4,
		RepayDuration:          5,
		Interest:               6,
		Fee:                    7,
		SettlementTx:           []byte{0x09},
	}
	b, err := EncodeInstruction(domain.BorrowLoan{Request: req})
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x00,
		0x01, 0x00, 0x00, 0x00, 'a',
		0x01, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 'c',
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00,
		0x06, 0x00, 0x00, 0x00,
		0x07, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x09,
	}, b)
}

func TestDecodeInstruction_Malformed(t *testing.T) {
	valid, err := EncodeInstruction(domain.BorrowLoan{Request: sampleRequest()})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
		code  string
	}{
		{"empty", nil, "DEC_001"},
		{"tag only", []byte{0x00}, "DEC_001"},
		{"unknown tag", []byte{0x01}, "DEC_002"},
		{"unknown tag max", []byte{0xff, 0x00, 0x00}, "DEC_002"},
		{"truncated tail", valid[:len(valid)-1], "DEC_001"},
		{"trailing byte", append(append([]byte{}, valid...), 0x00), "DEC_004"},
		{"huge address length", []byte{0x00, 0xff, 0xff, 0xff, 0xff, 'a'}, "DEC_001"},
		{"invalid utf8 address", []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0xff, 0, 0, 0, 0}, "DEC_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := DecodeInstruction(tt.input)
			require.Error(t, err)
			assert.Nil(t, ins)
			assert.Equal(t, tt.code, apperror.CodeOf(err))
		})
	}
}

func TestDecodeInstruction_EveryPrefixFails(t *testing.T) {
	valid, err := EncodeInstruction(domain.BorrowLoan{Request: sampleRequest()})
	require.NoError(t, err)

	for i := 0; i < len(valid); i++ {
		_, err := DecodeInstruction(valid[:i])
		assert.True(t, apperror.Is(err, "DEC_001"), "prefix of %d bytes", i)
	}
}

func TestReader_DoesNotAliasInput(t *testing.T) {
	w := NewWriter(8)
	w.Bytes([]byte{1, 2, 3})
	b, err := w.Result()
	require.NoError(t, err)

	out, err := NewReader(b).Bytes("blob")
	require.NoError(t, err)
	b[4] = 9
	assert.Equal(t, []byte{1, 2, 3}, out)
}
