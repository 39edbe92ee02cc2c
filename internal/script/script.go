// Package script parses the ESCR1_00 script container format.
//
// An ESCR1_00 file starts with an 8 byte magic signature and is split into
// three sections: an index table of string offsets, a bytecode block and a
// data block of null-terminated Shift-JIS strings. All multibyte integers
// are stored in little endian order.
package script

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic is the signature at the start of every ESCR1_00 script file.
const Magic = "ESCR1_00"

// ErrMissingMagic is returned for input that does not start with the
// ESCR1_00 signature.
var ErrMissingMagic = errors.New("not an ESCR1_00 file")

// TruncatedError is returned when a section of the container extends past
// the end of the input buffer.
type TruncatedError struct {
	Section string // section being read when the buffer ran out
	Needed  int    // bytes required to read the section
	Have    int    // bytes remaining in the buffer
}

func (e TruncatedError) Error() string {
	return fmt.Sprintf("truncated container: %s needs %d bytes, %d remaining",
		e.Section, e.Needed, e.Have)
}

// Script represents a parsed ESCR1_00 container. The index, code and data
// sections are views into the buffer passed to ParseBuffer and must not be
// modified.
type Script struct {
	Index []uint32 // string offsets into the data section
	Code  []byte   // bytecode block
	Data  []byte   // null-terminated strings, concatenated
}

// Load reads a script container from the reader and parses it.
func Load(reader io.Reader) (*Script, error) {
	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseBuffer(buf)
}

// ParseBuffer parses a script container from the given buffer.
// Bytes following the data section are ignored.
func ParseBuffer(buf []byte) (*Script, error) {
	if len(buf) < len(Magic) || !bytes.Equal(buf[:len(Magic)], []byte(Magic)) {
		return nil, ErrMissingMagic
	}

	r := sectionReader{buf: buf, pos: len(Magic)}

	indexCount, err := r.uint32("index count")
	if err != nil {
		return nil, err
	}
	indexBytes, err := r.bytes("index table", int(indexCount)*4)
	if err != nil {
		return nil, err
	}
	index := make([]uint32, indexCount)
	for i := range index {
		index[i] = binary.LittleEndian.Uint32(indexBytes[i*4:])
	}

	codeSize, err := r.uint32("code size")
	if err != nil {
		return nil, err
	}
	code, err := r.bytes("code block", int(codeSize))
	if err != nil {
		return nil, err
	}

	dataSize, err := r.uint32("data size")
	if err != nil {
		return nil, err
	}
	data, err := r.bytes("data block", int(dataSize))
	if err != nil {
		return nil, err
	}

	return &Script{
		Index: index,
		Code:  code,
		Data:  data,
	}, nil
}

// sectionReader reads consecutive container sections from a buffer and
// reports truncation with the section name that could not be read.
type sectionReader struct {
	buf []byte
	pos int
}

func (r *sectionReader) bytes(section string, count int) ([]byte, error) {
	if count < 0 || count > len(r.buf)-r.pos {
		return nil, TruncatedError{
			Section: section,
			Needed:  count,
			Have:    len(r.buf) - r.pos,
		}
	}
	b := r.buf[r.pos : r.pos+count]
	r.pos += count
	return b, nil
}

func (r *sectionReader) uint32(section string) (uint32, error) {
	b, err := r.bytes(section, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
