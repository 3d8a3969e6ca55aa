package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/hedgeops/posrecon/internal/alert"
	"github.com/hedgeops/posrecon/internal/export"
	"github.com/hedgeops/posrecon/internal/ingestion"
	"github.com/hedgeops/posrecon/internal/report"
)

type runCmd struct {
	sourceFile string
	targetFile string
	format     string
	configFile string
	breaksOut  string
	reportOut  string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "reconcile two position snapshot files" }
func (*runCmd) Usage() string {
	return `posrecon run -source <file> -target <file> [-format csv|json] [-config <file>] [-out <breaks.csv>] [-report <report.txt>]

  Compares an internal position snapshot against a custodian snapshot,
  prints the reconciliation report and the alert preview, and optionally
  writes the break list and report to files.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sourceFile, "source", "", "Source (internal books) snapshot file")
	f.StringVar(&c.targetFile, "target", "", "Target (custodian) snapshot file")
	f.StringVar(&c.format, "format", "", "Snapshot format: csv or json (defaults to file extension)")
	f.StringVar(&c.configFile, "config", "", "Optional YAML config file with tolerance overrides")
	f.StringVar(&c.breaksOut, "out", "", "Write breaks CSV to this path")
	f.StringVar(&c.reportOut, "report", "", "Write the text report to this path")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.sourceFile == "" || c.targetFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -source and -target are required")
		return subcommands.ExitUsageError
	}

	engine, logger, err := newEngine(c.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	source, err := ingestion.LoadSnapshotFile(c.sourceFile, c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	target, err := ingestion.LoadSnapshotFile(c.targetFile, c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := engine.Reconcile(source, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	now := time.Now()
	fmt.Println(report.Render(result, now))
	alert.Preview(os.Stdout, result.Breaks, now)

	if c.breaksOut != "" {
		if err := export.SaveBreaksCSV(c.breaksOut, result.Breaks); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("\nBreaks saved to: %s\n", c.breaksOut)
	}
	if c.reportOut != "" {
		if err := os.WriteFile(c.reportOut, []byte(report.Render(result, now)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Report saved to: %s\n", c.reportOut)
	}

	return subcommands.ExitSuccess
}
