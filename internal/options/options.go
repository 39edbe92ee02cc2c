// Package options contains the program options.
package options

// Program options of the disassembler tool.
type Program struct {
	Input  string // input script file
	Output string // output listing file, stdout if empty
	Batch  string // glob pattern for batch processing

	OpcodeTable string // TOML file with user-defined opcode definitions

	Strings      bool // resolve and print strings referenced by STR opcodes
	Convert      bool // expand half-width katakana in resolved strings
	Placeholders bool // print the placeholder text for failed string lookups

	AssumeYes bool // skip the interactive confirmation prompt
	Debug     bool
	Quiet     bool
}

// Disassembler defines options to control the disassembly output.
type Disassembler struct {
	ShowStrings      bool // print strings referenced by STR opcodes
	ConvertKana      bool // expand half-width katakana in printed strings
	ShowPlaceholders bool // print the placeholder text for failed lookups
}

// NewDisassembler returns disassembler options derived from the program
// options.
func NewDisassembler(opts Program) Disassembler {
	return Disassembler{
		ShowStrings:      opts.Strings,
		ConvertKana:      opts.Convert,
		ShowPlaceholders: opts.Placeholders,
	}
}
