// Package writer implements the listing output formatting.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/escrgodisasm/internal/decoder"
)

// nameWidth is the field width of opcode names in listing lines that carry
// a parameter column.
const nameWidth = 20

// Options of the writer.
type Options struct {
	ShowStrings      bool // print strings referenced by STR opcodes
	ShowPlaceholders bool // print the placeholder text for failed lookups
}

// Writer formats instruction records as listing lines.
type Writer struct {
	writer  io.Writer
	options Options
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		writer:  writer,
		options: options,
	}
}

// WriteRecord writes the listing line for a single instruction record.
func (w *Writer) WriteRecord(record decoder.Record, name string) error {
	var err error
	if record.HasParam {
		_, err = fmt.Fprintf(w.writer, "%08x:\t%*s\t%08x\n",
			record.Offset, nameWidth, name, record.Param)
	} else {
		_, err = fmt.Fprintf(w.writer, "%08x:\t%s\n", record.Offset, name)
	}
	if err != nil {
		return fmt.Errorf("writing listing line: %w", err)
	}
	return nil
}

// WriteString writes the resolved string of a STR opcode as an indented
// block below its listing line. It writes nothing if string output is
// disabled, or if the lookup failed and printing placeholders is disabled.
func (w *Writer) WriteString(str []byte, found bool) error {
	if !w.options.ShowStrings {
		return nil
	}
	if !found && !w.options.ShowPlaceholders {
		return nil
	}
	if _, err := fmt.Fprintf(w.writer, "\t\t%s\n\n", str); err != nil {
		return fmt.Errorf("writing string line: %w", err)
	}
	return nil
}
