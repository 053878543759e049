package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Writer appends canonical encodings to an internal buffer.
type Writer struct {
	buf []byte
	err error
}

// NewWriter returns a Writer with capacity for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

func (w *Writer) U8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) U32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) Bytes(b []byte) {
	if uint64(len(b)) > math.MaxUint32 {
		w.fail(fmt.Errorf("byte blob of %d bytes exceeds u32 length prefix", len(b)))
		return
	}
	w.U32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *Writer) String(s string) {
	if uint64(len(s)) > math.MaxUint32 {
		w.fail(fmt.Errorf("string of %d bytes exceeds u32 length prefix", len(s)))
		return
	}
	w.U32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Result returns the encoded bytes or the first error recorded.
func (w *Writer) Result() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}
