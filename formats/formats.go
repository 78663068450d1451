// Package formats dispatches pattern reads and writes to the supported file formats.
// Files ending in ".zst" are transparently compressed with Zstandard.
package formats

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/formats/jef"
	"github.com/esimov/needlework/formats/pec"
	"github.com/esimov/needlework/formats/u01"
	"github.com/esimov/needlework/internal/logging"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Format identifies a supported file format.
type Format int

const (
	Unknown Format = iota
	PEC
	JEF
	U01
)

// CompressedExt is the extension of Zstandard compressed pattern files.
const CompressedExt = ".zst"

var names = map[Format]string{
	PEC: "pec",
	JEF: "jef",
	U01: "u01",
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{PEC, JEF, U01}
}

func (f Format) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return "unknown"
}

// Parse returns the format named by s, with or without the leading dot.
func Parse(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(s), ".")
	for f, n := range names {
		if n == s {
			return f, nil
		}
	}
	return Unknown, errors.Errorf("unsupported format %q", s)
}

// IsCompressed reports whether the file name carries the compressed extension.
func IsCompressed(name string) bool {
	return strings.EqualFold(filepath.Ext(name), CompressedExt)
}

// FromExtension returns the format matching the file extension, ignoring a compression suffix.
func FromExtension(name string) Format {
	if IsCompressed(name) {
		name = name[:len(name)-len(CompressedExt)]
	}
	f, err := Parse(filepath.Ext(name))
	if err != nil {
		return Unknown
	}
	return f
}

// Detect identifies the format from the leading bytes of the file, falling back to its name.
func Detect(name string, head []byte) (Format, error) {
	if bytes.HasPrefix(head, []byte(pec.Magic)) {
		return PEC, nil
	}
	if f := FromExtension(name); f != Unknown {
		return f, nil
	}
	return Unknown, errors.Errorf("cannot detect the format of %q", name)
}

// DefaultSettings returns the encoder settings of the format.
func DefaultSettings(f Format) (needlework.EncoderSettings, error) {
	switch f {
	case PEC:
		return pec.DefaultSettings(), nil
	case JEF:
		return jef.DefaultSettings(), nil
	case U01:
		return u01.DefaultSettings(), nil
	}
	return needlework.EncoderSettings{}, errors.Errorf("unsupported format %v", f)
}

// Read decodes a pattern of format f.
func Read(r io.Reader, f Format) (*needlework.Pattern, error) {
	switch f {
	case PEC:
		return pec.Read(r)
	case JEF:
		return jef.Read(r)
	case U01:
		return u01.Read(r)
	}
	return nil, errors.Errorf("unsupported format %v", f)
}

// Write encodes p in format f using the default settings of the format.
func Write(w io.Writer, p *needlework.Pattern, f Format) error {
	s, err := DefaultSettings(f)
	if err != nil {
		return err
	}
	return WriteWith(w, p, f, needlework.NewTranscoder(s))
}

// WriteWith encodes p in format f after running it through t.
func WriteWith(w io.Writer, p *needlework.Pattern, f Format, t *needlework.Transcoder) error {
	switch f {
	case PEC:
		return pec.WriteWith(w, p, t)
	case JEF:
		return jef.WriteWith(w, p, t)
	case U01:
		return u01.WriteWith(w, p, t)
	}
	return errors.Errorf("unsupported format %v", f)
}

// ReadFrom decodes a pattern from r. The name selects decompression and the format
// when f is Unknown and the content carries no magic.
func ReadFrom(r io.Reader, name string, f Format) (*needlework.Pattern, Format, error) {
	if IsCompressed(name) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, Unknown, errors.Wrap(err, "cannot create zstd reader")
		}
		defer dec.Close()
		r = dec
	}

	br := bufio.NewReader(r)
	if f == Unknown {
		head, err := br.Peek(len(pec.Magic))
		if err != nil && err != io.EOF {
			return nil, Unknown, errors.Wrapf(err, "cannot read %s", name)
		}
		if f, err = Detect(name, head); err != nil {
			return nil, Unknown, err
		}
	}
	logging.Debug("reading %s as %v", name, f)

	p, err := Read(br, f)
	if err != nil {
		return nil, f, errors.Wrapf(err, "cannot decode %s", name)
	}
	logging.Debug("read %d commands and %d threads from %s", p.Len(), len(p.Threads()), name)
	return p, f, nil
}

// ReadFile decodes the pattern stored at path.
func ReadFile(path string, f Format) (*needlework.Pattern, Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Unknown, errors.Wrap(err, "cannot open the source file")
	}
	defer file.Close()

	return ReadFrom(file, path, f)
}

// WriteTo encodes p into w. The name selects compression and the format when f is Unknown.
// A nil transcoder uses the default settings of the format.
func WriteTo(w io.Writer, name string, p *needlework.Pattern, f Format, t *needlework.Transcoder) error {
	if f == Unknown {
		if f = FromExtension(name); f == Unknown {
			return errors.Errorf("cannot detect the format of %q", name)
		}
	}
	if t == nil {
		s, err := DefaultSettings(f)
		if err != nil {
			return err
		}
		t = needlework.NewTranscoder(s)
	}
	logging.Debug("writing %s as %v", name, f)

	if !IsCompressed(name) {
		return WriteWith(w, p, f, t)
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return errors.Wrap(err, "cannot create zstd writer")
	}
	if err := WriteWith(enc, p, f, t); err != nil {
		enc.Close()
		return err
	}
	return errors.Wrap(enc.Close(), "cannot flush zstd stream")
}

// WriteFile encodes p into the file at path.
func WriteFile(path string, p *needlework.Pattern, f Format, t *needlework.Transcoder) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create the destination file")
	}
	if err := WriteTo(file, path, p, f, t); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "cannot close the destination file")
}
