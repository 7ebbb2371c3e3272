package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"
)

// report computes one table.
type report struct {
	name string
	run  func(ctx context.Context) (table, error)
}

type table struct {
	title  string
	header []string
	rows   [][]string
}

// compute runs the reports with at most jobs in flight and returns their
// tables in report order.
func compute(ctx context.Context, logger *slog.Logger, reports []report, jobs int) ([]table, error) {
	tables := make([]table, len(reports))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, r := range reports {
		g.Go(func() error {
			start := time.Now()
			logger.Debug("report started", "report", r.name)

			t, err := r.run(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", r.name, err)
			}

			tables[i] = t
			logger.Debug("report done", "report", r.name, "elapsed", time.Since(start))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tables, nil
}

func writeTables(w io.Writer, format string, tables []table) error {
	for i, t := range tables {
		var err error
		if format == "csv" {
			err = writeCSV(w, t)
		} else {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}

			err = writeAligned(w, t)
		}

		if err != nil {
			return fmt.Errorf("write %s: %w", t.title, err)
		}
	}

	return nil
}

func writeAligned(w io.Writer, t table) error {
	if _, err := fmt.Fprintf(w, "%s\n", t.title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s\n", strings.Join(t.header, "\t")); err != nil {
		return err
	}

	rule := make([]string, len(t.header))
	for i, h := range t.header {
		rule[i] = strings.Repeat("-", len(h))
	}

	if _, err := fmt.Fprintf(tw, "%s\n", strings.Join(rule, "\t")); err != nil {
		return err
	}

	for _, row := range t.rows {
		if _, err := fmt.Fprintf(tw, "%s\n", strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// writeCSV writes the table with the title as a leading report column so
// that several tables can share one stream.
func writeCSV(w io.Writer, t table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(append([]string{"report"}, t.header...)); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := cw.Write(append([]string{t.title}, row...)); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
