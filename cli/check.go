package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/beanledger/errors"
	"github.com/robinvdvleuten/beanledger/ledger"
	"github.com/robinvdvleuten/beanledger/loader"
	"github.com/robinvdvleuten/beanledger/parser"
	"github.com/robinvdvleuten/beanledger/telemetry"
)

type CheckCmd struct {
	File   FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Strict bool        `help:"Also verify that every transaction's postings sum to zero."`
	Output string      `help:"Error output format." enum:"text,json" default:"text"`
	Watch  bool        `help:"Re-run the check whenever the file changes."`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var checkTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				checkTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr)
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		checkTimer = collector.Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
		runCtx = telemetry.WithRootTimer(runCtx, checkTimer)

		defer reportTelemetry()
	}

	if cmd.Watch {
		if cmd.File.IsStdin() {
			return fmt.Errorf("--watch requires a file argument")
		}
		return cmd.watch(runCtx, ctx)
	}

	if failed := cmd.check(runCtx, ctx); failed {
		reportTelemetry()
		os.Exit(1)
	}

	return nil
}

// check runs a single check pass and reports whether it failed.
func (cmd *CheckCmd) check(runCtx context.Context, ctx *kong.Context) bool {
	timer := telemetry.TimerFromContext(runCtx).Child("load")
	ldr := loader.New(loader.WithParserOptions(parser.WithRecordedErrors()))
	entries, err := cmd.File.LoadEntries(runCtx, ldr)
	timer.End()

	formatter := cmd.formatter()

	if err != nil {
		_, _ = fmt.Fprint(ctx.Stderr, formatter.Format(err))
		printError(ctx.Stderr, "parse error")
		return true
	}

	errs := make([]error, 0, len(entries.Errors))
	for _, parseErr := range entries.Errors {
		errs = append(errs, parseErr)
	}

	if cmd.Strict {
		timer := telemetry.TimerFromContext(runCtx).Child("balance check")
		for _, txn := range entries.Transactions {
			if err := ledger.CheckBalanced(txn); err != nil {
				errs = append(errs, err)
			}
		}
		timer.End()
	}

	if len(errs) > 0 {
		_, _ = fmt.Fprint(ctx.Stderr, formatter.FormatAll(errs))
		printError(ctx.Stderr, fmt.Sprintf("%d error(s) found", len(errs)))
		return true
	}

	printInfof(ctx.Stdout, "%d entries", entries.Len())
	printSuccess(ctx.Stdout, "Check passed")
	return false
}

func (cmd *CheckCmd) formatter() errors.Formatter {
	if cmd.Output == "json" {
		return errors.NewJSONFormatter()
	}
	return errors.NewTextFormatter()
}
