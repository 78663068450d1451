package codec

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/esimov/needlework"
	"github.com/pkg/errors"
)

// Reader is a buffered byte reader tracking its offset. Running out of data is reported
// as a ParseError, every other failure is returned wrapped as an I/O error.
type Reader struct {
	r      *bufio.Reader
	format string
	offset int64
	buf    [4]byte
}

// NewReader creates a Reader for the named format.
func NewReader(r io.Reader, format string) *Reader {
	return &Reader{r: bufio.NewReader(r), format: format}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Format returns the format name used in errors.
func (r *Reader) Format() string {
	return r.format
}

func (r *Reader) fail(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return needlework.NewParseError(r.format, "truncated data at offset %d", r.offset)
	}
	return errors.Wrapf(err, "%s: read at offset %d", r.format, r.offset)
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, r.fail(err)
	}
	r.offset++
	return b, nil
}

// ReadFull fills buf completely.
func (r *Reader) ReadFull(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.offset += int64(n)
	if err != nil {
		return r.fail(err)
	}
	return nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int64) error {
	if n < 0 {
		return needlework.NewParseError(r.format, "negative skip of %d bytes at offset %d", n, r.offset)
	}
	m, err := io.CopyN(io.Discard, r.r, n)
	r.offset += m
	if err != nil {
		return r.fail(err)
	}
	return nil
}

// SkipTo discards bytes up to the absolute offset.
func (r *Reader) SkipTo(offset int64) error {
	if offset < r.offset {
		return needlework.NewParseError(r.format, "offset %d points back into already read data (at %d)", offset, r.offset)
	}
	return r.Skip(offset - r.offset)
}

// Uint16LE reads a little-endian unsigned 16-bit integer.
func (r *Reader) Uint16LE() (uint16, error) {
	if err := r.ReadFull(r.buf[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[:2]), nil
}

// Int16LE reads a little-endian signed 16-bit integer.
func (r *Reader) Int16LE() (int, error) {
	v, err := r.Uint16LE()
	return int(int16(v)), err
}

// Uint24LE reads a little-endian unsigned 24-bit integer.
func (r *Reader) Uint24LE() (int, error) {
	if err := r.ReadFull(r.buf[:3]); err != nil {
		return 0, err
	}
	return int(r.buf[0]) | int(r.buf[1])<<8 | int(r.buf[2])<<16, nil
}

// Int32LE reads a little-endian signed 32-bit integer.
func (r *Reader) Int32LE() (int, error) {
	if err := r.ReadFull(r.buf[:4]); err != nil {
		return 0, err
	}
	return int(int32(binary.LittleEndian.Uint32(r.buf[:4]))), nil
}

// StitchLimit bounds the number of records a decode loop accepts.
type StitchLimit struct {
	format string
	max    int
	count  int
}

// NewStitchLimit creates a limit of max records, needlework.MaxStitches if max is not positive.
func NewStitchLimit(format string, max int) *StitchLimit {
	if max <= 0 {
		max = needlework.MaxStitches
	}
	return &StitchLimit{format: format, max: max}
}

// Add counts one record and fails once the limit is exceeded.
func (l *StitchLimit) Add() error {
	l.count++
	if l.count > l.max {
		return needlework.LimitError(l.format, "stitch count", l.max, l.count)
	}
	return nil
}
