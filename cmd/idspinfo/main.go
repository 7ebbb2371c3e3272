// Command idspinfo characterizes the fixed-point kernels.
//
// Usage:
//
//	idspinfo [flags]
//
// Without a report flag it prints all reports.
//
// Examples:
//
//	idspinfo -bench
//	idspinfo -cossin -bits 16
//	idspinfo -pll -cycles 65536 -format csv
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/term"
)

type options struct {
	bench  bool
	cossin bool
	pll    bool
	format string
	bits   int
	cycles int
	jobs   int
}

func main() {
	var opts options

	flag.BoolVar(&opts.bench, "bench", false, "benchmark each kernel (ns/op)")
	flag.BoolVar(&opts.cossin, "cossin", false, "report CosSin accuracy and spectral purity")
	flag.BoolVar(&opts.pll, "pll", false, "report lock behavior of each PLL variant")
	flag.StringVar(&opts.format, "format", "auto", "output format: table, csv or auto")
	flag.IntVar(&opts.bits, "bits", 20, "log2 of the CosSin sweep length")
	flag.IntVar(&opts.cycles, "cycles", 1<<15, "samples per PLL run")
	flag.IntVar(&opts.jobs, "jobs", runtime.GOMAXPROCS(0), "reports computed in parallel")
	verbose := flag.Bool("v", false, "log report progress")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: idspinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Characterizes the fixed-point oscillator, filter and PLL kernels.\n")
		fmt.Fprintf(os.Stderr, "Without a report flag, prints all reports.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  idspinfo -bench\n")
		fmt.Fprintf(os.Stderr, "  idspinfo -cossin -bits 16\n")
		fmt.Fprintf(os.Stderr, "  idspinfo -pll -format csv\n")
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), os.Stdout, logger, opts); err != nil {
		logger.Error("idspinfo failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, logger *slog.Logger, opts options) error {
	format, err := resolveFormat(opts.format, w)
	if err != nil {
		return err
	}

	if !opts.bench && !opts.cossin && !opts.pll {
		opts.bench, opts.cossin, opts.pll = true, true, true
	}

	var reports []report
	if opts.bench {
		reports = append(reports, benchReport())
	}

	if opts.cossin {
		reports = append(reports, cosSinAccuracyReport(opts.bits), cosSinPurityReport())
	}

	if opts.pll {
		reports = append(reports, lockReport(opts.cycles))
	}

	tables, err := compute(ctx, logger, reports, opts.jobs)
	if err != nil {
		return err
	}

	return writeTables(w, format, tables)
}

// resolveFormat maps "auto" to an aligned table on a terminal and CSV
// otherwise.
func resolveFormat(name string, w io.Writer) (string, error) {
	switch name {
	case "table", "csv":
		return name, nil
	case "auto":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "table", nil
		}

		return "csv", nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, csv or auto)", name)
	}
}
