// Package disasm implements the disassembly of ESCR1 scripts into a
// listing of instructions.
package disasm

import (
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/escrgodisasm/internal/decoder"
	"github.com/retroenv/escrgodisasm/internal/kana"
	"github.com/retroenv/escrgodisasm/internal/opcode"
	"github.com/retroenv/escrgodisasm/internal/options"
	"github.com/retroenv/escrgodisasm/internal/script"
	"github.com/retroenv/escrgodisasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Disasm disassembles the code block of a script into a text listing.
type Disasm struct {
	logger  *log.Logger
	script  *script.Script
	table   *opcode.Table
	options options.Disassembler
}

// New creates a new disassembler for the given script.
func New(logger *log.Logger, scr *script.Script, table *opcode.Table,
	opts options.Disassembler) *Disasm {

	return &Disasm{
		logger:  logger,
		script:  scr,
		table:   table,
		options: opts,
	}
}

// Process disassembles the script and writes the listing to the writer.
//
// An unknown opcode or a truncated operand ends the listing early, the
// condition is logged and the lines written so far remain valid output.
// Only write errors are returned.
func (dis *Disasm) Process(output io.Writer) error {
	out := writer.New(output, writer.Options{
		ShowStrings:      dis.options.ShowStrings,
		ShowPlaceholders: dis.options.ShowPlaceholders,
	})

	dec := decoder.New(dis.script.Code, dis.table)
	for dec.Next() {
		record := dec.Record()

		if err := out.WriteRecord(record, dis.table.Name(record.ID)); err != nil {
			return err
		}

		if dis.options.ShowStrings && record.ID == opcode.Str {
			if err := dis.writeString(out, record); err != nil {
				return err
			}
		}
	}

	if err := dec.Err(); err != nil {
		var unknownErr opcode.UnknownError
		if errors.As(err, &unknownErr) {
			dis.logger.Error("Stopping at unknown opcode, missing opcode table entry?",
				log.Err(err),
				log.Int("user_opcodes", dis.table.UserDefs()))
		} else {
			dis.logger.Error("Stopping at invalid instruction", log.Err(err))
		}
	}
	return nil
}

// writeString resolves the string referenced by a STR instruction and
// writes it below the instruction's listing line. Lookup failures are
// logged and do not end the listing.
func (dis *Disasm) writeString(out *writer.Writer, record decoder.Record) error {
	str, found, err := dis.script.StringByID(record.Param)
	if err != nil {
		dis.logger.Warn("Skipping unresolvable string",
			log.Err(err),
			log.Hex("offset", record.Offset))
		return nil
	}

	if !found {
		dis.logger.Warn("String lookup failed",
			log.Int("id", int(record.Param)),
			log.Hex("offset", record.Offset))
		return out.WriteString(str, false)
	}

	if dis.options.ConvertKana {
		converted, err := kana.Transcode(str)
		if err != nil {
			dis.logger.Warn("Printing string unconverted",
				log.Err(fmt.Errorf("converting string %d: %w", record.Param, err)))
		} else {
			str = converted
		}
	}
	return out.WriteString(str, true)
}
