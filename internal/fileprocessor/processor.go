// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/escrgodisasm/internal/disasm"
	"github.com/retroenv/escrgodisasm/internal/opcode"
	"github.com/retroenv/escrgodisasm/internal/options"
	"github.com/retroenv/escrgodisasm/internal/script"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete processing workflow for a single script
// file: loading the container, the optional user opcode table and writing
// the disassembly listing.
func ProcessFile(logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	scr, err := loadScript(opts)
	if err != nil {
		return fmt.Errorf("loading script: %w", err)
	}

	table, err := loadOpcodeTable(opts)
	if err != nil {
		return fmt.Errorf("loading opcode table: %w", err)
	}

	logger.Debug("Script loaded",
		log.String("file", opts.Input),
		log.Int("strings", len(scr.Index)),
		log.Int("code_bytes", len(scr.Code)),
		log.Int("data_bytes", len(scr.Data)))

	if opts.Output == "" && !opts.Quiet && !opts.AssumeYes {
		if !confirmContinue(os.Stdin, os.Stderr, opts.Input) {
			logger.Info("Skipping file", log.String("file", opts.Input))
			return nil
		}
	}

	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := output.(io.Closer); ok && output != os.Stdout {
			_ = closer.Close()
		}
	}()

	dis := disasm.New(logger, scr, table, disasmOptions)
	if err := dis.Process(output); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".lst"
}

func loadScript(opts options.Program) (*script.Script, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	scr, err := script.Load(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", opts.Input, err)
	}
	return scr, nil
}

func loadOpcodeTable(opts options.Program) (*opcode.Table, error) {
	var defs []opcode.Def
	if opts.OpcodeTable != "" {
		var err error
		defs, err = opcode.LoadDefs(opts.OpcodeTable)
		if err != nil {
			return nil, err
		}
	}
	return opcode.NewTable(defs), nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// confirmContinue asks for confirmation before dumping a listing to the
// terminal. Any answer other than y aborts.
func confirmContinue(in io.Reader, out io.Writer, inputFile string) bool {
	fmt.Fprintf(out, "Print listing of %s? [y/N] ", inputFile)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("escrgodisasm",
		log.String("version", buildinfo.Version(version, commit, date)))
}
