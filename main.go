// Package main implements a disassembler for ESCR1_00 script containers
package main

import (
	"os"

	"github.com/retroenv/escrgodisasm/internal/cli"
	"github.com/retroenv/retrogolib/app"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	if err := cli.Execute(ctx, version, commit, date); err != nil {
		os.Exit(1)
	}
}
