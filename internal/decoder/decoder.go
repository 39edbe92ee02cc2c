// Package decoder walks the bytecode block of a script and splits it into
// instruction records.
//
// Instructions are one opcode byte, optionally followed by a 4 byte little
// endian parameter. Whether a parameter follows is determined by the opcode
// table, there is no other framing in the code block.
package decoder

import (
	"encoding/binary"
	"fmt"

	"github.com/retroenv/escrgodisasm/internal/opcode"
)

// Record is a single decoded instruction.
type Record struct {
	Offset   uint32 // byte offset of the opcode byte in the code block
	ID       byte   // opcode id
	Param    uint32 // inline parameter, only valid if HasParam is set
	HasParam bool
}

// TruncatedOperandError is returned when the code block ends before the
// inline parameter of the current opcode.
type TruncatedOperandError struct {
	Offset  uint32 // offset of the opcode byte missing its parameter
	CodeLen int
}

func (e TruncatedOperandError) Error() string {
	return fmt.Sprintf("opcode at offset %08x is missing its parameter, code block ends at %d",
		e.Offset, e.CodeLen)
}

// Decoder provides forward iteration over the instructions of a code
// block, in the style of bufio.Scanner:
//
//	dec := decoder.New(code, table)
//	for dec.Next() {
//		rec := dec.Record()
//		...
//	}
//	if err := dec.Err(); err != nil {
//		...
//	}
//
// An unknown opcode or a truncated operand ends the iteration, the records
// decoded up to that point remain valid.
type Decoder struct {
	code  []byte
	table *opcode.Table

	offset int
	rec    Record
	err    error
}

// New creates a decoder for the given code block.
func New(code []byte, table *opcode.Table) *Decoder {
	return &Decoder{
		code:  code,
		table: table,
	}
}

// Next advances to the next instruction. It returns false when the end of
// the code block is reached or decoding can not continue, in which case
// Err reports the cause.
func (d *Decoder) Next() bool {
	if d.err != nil || d.offset >= len(d.code) {
		return false
	}

	offset := uint32(d.offset)
	id := d.code[d.offset]

	hasParam, err := d.table.HasParam(id)
	if err != nil {
		d.err = fmt.Errorf("offset %08x: %w", offset, err)
		return false
	}

	d.rec = Record{
		Offset:   offset,
		ID:       id,
		HasParam: hasParam,
	}
	if !hasParam {
		d.offset++
		return true
	}

	if d.offset+5 > len(d.code) {
		d.err = TruncatedOperandError{
			Offset:  offset,
			CodeLen: len(d.code),
		}
		return false
	}
	d.rec.Param = binary.LittleEndian.Uint32(d.code[d.offset+1:])
	d.offset += 5
	return true
}

// Record returns the instruction decoded by the last call to Next.
func (d *Decoder) Record() Record {
	return d.rec
}

// Err returns the error that ended the iteration, or nil if the end of the
// code block was reached.
func (d *Decoder) Err() error {
	return d.err
}

// Reset restarts the decoder at offset 0.
func (d *Decoder) Reset() {
	d.offset = 0
	d.rec = Record{}
	d.err = nil
}
