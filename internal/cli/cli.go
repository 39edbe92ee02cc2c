// Package cli handles command line interface logic
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/escrgodisasm/internal/config"
	"github.com/retroenv/escrgodisasm/internal/fileprocessor"
	"github.com/retroenv/escrgodisasm/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

// Execute parses the command line and runs the disassembler. The returned
// error indicates a usage error or a fatal processing error, a decode loop
// that stopped early is still a success. Fatal errors are reported on the
// diagnostic stream, listing output is the only thing written to stdout.
func Execute(ctx context.Context, version, commit, date string) error {
	return execute(ctx, os.Args[1:], os.Stderr, version, commit, date)
}

func execute(ctx context.Context, args []string, errOutput io.Writer,
	version, commit, date string) error {

	var opts options.Program

	cmd := &cobra.Command{
		Use:           "escrgodisasm [options] <file to disassemble>",
		Short:         "escrgodisasm - ESCR1_00 script disassembler",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.Batch == "" {
				return errors.New("no input file given")
			}
			if len(args) > 0 {
				opts.Input = args[0]
			}
			cmd.SilenceUsage = true
			return run(cmd.Context(), opts, version, commit, date)
		},
	}
	cmd.SetArgs(args)
	cmd.SetErr(errOutput)

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Strings, "str", "s", false, "resolve and print strings referenced by STR opcodes")
	flags.BoolVarP(&opts.Convert, "convert", "c", false, "convert half-width katakana in printed strings to full-width")
	flags.BoolVar(&opts.Placeholders, "placeholders", false, "print the placeholder text for failed string lookups")
	flags.StringVarP(&opts.Output, "output", "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVarP(&opts.OpcodeTable, "opcodes", "t", "", "TOML file defining the game specific opcodes")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask with automatic output file naming, for example *.bin")
	flags.BoolVarP(&opts.AssumeYes, "yes", "y", false, "skip the confirmation prompt before printing to the console")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")

	err := cmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(errOutput, fmt.Errorf("disassembling failed: %w", err))
	}
	return err
}

func run(ctx context.Context, opts options.Program, version, commit, date string) error {
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match pattern %s", opts.Batch)
	}

	disasmOptions := options.NewDisassembler(opts)
	batch := len(files) > 1 || opts.Batch != ""

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		opts.Input = file
		if batch {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(logger, opts, disasmOptions); err != nil {
			if !batch {
				return err
			}
			// keep going, a bad file in a batch should not stop the rest
			logger.Error("Disassembling failed",
				log.String("file", file),
				log.Err(err))
		}
	}
	return nil
}
