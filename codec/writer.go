package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Writer builds a binary file in memory. Headers which depend on the encoded stitch
// data are reserved first and patched once the data is known.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the written data.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Write appends p. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Byte appends raw bytes.
func (w *Writer) Byte(b ...byte) {
	w.buf.Write(b)
}

// Text appends the raw bytes of s.
func (w *Writer) Text(s string) {
	w.buf.WriteString(s)
}

// Pad appends n copies of b.
func (w *Writer) Pad(n int, b byte) {
	for i := 0; i < n; i++ {
		w.buf.WriteByte(b)
	}
}

// Int16LE appends a little-endian 16-bit integer.
func (w *Writer) Int16LE(v int) {
	w.buf.Write(binary.LittleEndian.AppendUint16(nil, uint16(int16(v))))
}

// Uint16BE appends a big-endian 16-bit integer.
func (w *Writer) Uint16BE(v uint16) {
	w.buf.Write(binary.BigEndian.AppendUint16(nil, v))
}

// Uint24LE appends a little-endian 24-bit integer.
func (w *Writer) Uint24LE(v int) {
	w.buf.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16)})
}

// Int32LE appends a little-endian 32-bit integer.
func (w *Writer) Int32LE(v int) {
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(int32(v))))
}

// PutUint24LE overwrites three bytes at offset.
func (w *Writer) PutUint24LE(offset, v int) {
	b := w.buf.Bytes()
	b[offset], b[offset+1], b[offset+2] = byte(v), byte(v>>8), byte(v>>16)
}

// PutInt32LE overwrites four bytes at offset.
func (w *Writer) PutInt32LE(offset, v int) {
	binary.LittleEndian.PutUint32(w.buf.Bytes()[offset:], uint32(int32(v)))
}

// Flush copies the built data to dst.
func (w *Writer) Flush(dst io.Writer) error {
	if _, err := dst.Write(w.buf.Bytes()); err != nil {
		return errors.Wrap(err, "write pattern data")
	}
	return nil
}
