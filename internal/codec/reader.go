// Package codec implements the program's canonical binary encoding.
//
// The layout is borsh: integers are little-endian, strings and byte blobs are
// prefixed with a u32 length, enums with a u8 tag. Every value has exactly one
// encoding, so equal values always produce identical bytes.
package codec

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"

	"collateral-loan-program/pkg/apperror"
)

var errInvalidUTF8 = errors.New("string is not valid UTF-8")

// Reader consumes an untrusted byte slice. It never reads past the end of
// its input and never allocates more than the input length.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader over b. The slice is not modified.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining reports how many bytes are left unread.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *Reader) take(n int, field string) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, apperror.ErrTruncated(field)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// U8 reads one byte.
func (r *Reader) U8(field string) (uint8, error) {
	b, err := r.take(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32(field string) (uint32, error) {
	b, err := r.take(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Bytes reads a u32 length followed by that many bytes. The result is a copy.
func (r *Reader) Bytes(field string) ([]byte, error) {
	n, err := r.U32(field + " length")
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return nil, apperror.ErrTruncated(field)
	}
	b, err := r.take(int(n), field)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// String reads a length-prefixed UTF-8 string.
func (r *Reader) String(field string) (string, error) {
	n, err := r.U32(field + " length")
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return "", apperror.ErrTruncated(field)
	}
	b, err := r.take(int(n), field)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", apperror.ErrMalformedField(field, errInvalidUTF8)
	}
	return string(b), nil
}

// Finish fails with DEC_004 if any input is left unread.
func (r *Reader) Finish() error {
	if n := r.Remaining(); n != 0 {
		return apperror.ErrTrailingBytes(n)
	}
	return nil
}
