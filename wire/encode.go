// Package wire implements the length-prefixed primitives of the key-blob
// format: strings, byte fields, and arbitrary-precision integers, each
// written as uint32(length) || payload in network byte order.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxFieldLen bounds a single length-prefixed field. Blobs come off the
// network, so a corrupt length must not turn into a giant allocation.
const MaxFieldLen = 1 << 20

// ErrFieldTooLong is returned when a length prefix exceeds MaxFieldLen.
var ErrFieldTooLong = errors.New("wire: field exceeds maximum length")

// WriteString writes s preceded by its length.
func WriteString(s string, w io.Writer) (int64, error) {
	return WriteBytes([]byte(s), w)
}

// WriteBytes writes b preceded by its length.
func WriteBytes(b []byte, w io.Writer) (int64, error) {
	var written int64
	err := binary.Write(w, binary.BigEndian, uint32(len(b)))
	if err != nil {
		return written, err
	}
	written += 4
	n, err := w.Write(b)
	written += int64(n)
	return written, err
}

// ReadString reads a variable length string.
func ReadString(r io.Reader) (string, int64, error) {
	var bytesRead int64
	var length uint32
	err := binary.Read(r, binary.BigEndian, &length)
	if err != nil {
		return "", bytesRead, err
	}
	bytesRead += 4
	if length > MaxFieldLen {
		return "", bytesRead, fmt.Errorf("%w: %d", ErrFieldTooLong, length)
	}
	builder := strings.Builder{}
	copied, err := io.CopyN(&builder, r, int64(length))
	bytesRead += copied
	return builder.String(), bytesRead, err
}

// ReadBytes reads a variable length byte field.
func ReadBytes(r io.Reader) ([]byte, int64, error) {
	var bytesRead int64
	var length uint32
	err := binary.Read(r, binary.BigEndian, &length)
	if err != nil {
		return nil, bytesRead, err
	}
	bytesRead += 4
	if length > MaxFieldLen {
		return nil, bytesRead, fmt.Errorf("%w: %d", ErrFieldTooLong, length)
	}
	b := make([]byte, length)
	n, err := io.ReadFull(r, b)
	bytesRead += int64(n)
	if err != nil {
		return nil, bytesRead, err
	}
	return b, bytesRead, nil
}
