package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/beanledger/formatter"
	"github.com/robinvdvleuten/beanledger/loader"
	"github.com/robinvdvleuten/beanledger/telemetry"
)

type FormatCmd struct {
	File           FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	CurrencyColumn int         `help:"Column for currency alignment." default:"0"`
	Indentation    int         `help:"Number of spaces postings are indented with." default:"0"`
	Write          bool        `help:"Rewrite the file in place instead of printing to stdout." short:"w"`
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	ldr := loader.New()
	entries, err := cmd.File.LoadEntries(runCtx, ldr)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		os.Exit(1)
	}

	// Unparseable statements would be dropped by a rewrite; refuse
	// rather than lose data.
	if len(entries.Unhandled) > 0 {
		printError(ctx.Stderr, fmt.Sprintf("%d unparseable statement(s); not formatting", len(entries.Unhandled)))
		os.Exit(1)
	}

	var opts []formatter.Option
	if cmd.CurrencyColumn > 0 {
		opts = append(opts, formatter.WithCurrencyColumn(cmd.CurrencyColumn))
	}
	if cmd.Indentation > 0 {
		opts = append(opts, formatter.WithIndentation(cmd.Indentation))
	}
	f := formatter.New(opts...)

	var buf strings.Builder
	if err := f.Format(&buf, entries.All()); err != nil {
		return err
	}

	if !cmd.Write {
		_, _ = fmt.Fprint(ctx.Stdout, buf.String())
		return nil
	}

	if cmd.File.IsStdin() {
		return fmt.Errorf("--write requires a file argument")
	}

	confirmed, err := promptYesNo(fmt.Sprintf("Rewrite %s in place?", cmd.File.Filename))
	if err != nil {
		return err
	}
	if !confirmed {
		printInfof(ctx.Stdout, "aborted")
		return nil
	}

	if err := os.WriteFile(cmd.File.GetAbsoluteFilename(), []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.File.Filename, err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Formatted %s", cmd.File.Filename))
	return nil
}
