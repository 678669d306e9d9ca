package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// TableRow compares the lower bound of one instance with its stored colours.
type TableRow struct {
	File       string
	LowerBound int
	Colors     int
	// Ratio is LowerBound / Colors; 1 means provably optimal.
	Ratio float64
}

// Tabulate reads every file without computing crossings, pairs the lower
// bound with the stored colour count (the item count when nothing is
// stored) and writes the rows sorted by ratio, worst first, to the table
// output. Unreadable files are skipped and joined into the error.
func (r *Runner) Tabulate(ctx context.Context, files []string) ([]TableRow, error) {
	var (
		rows []TableRow
		errs []error
	)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		row, err := r.tableRow(path)
		if err != nil {
			r.log.Error("file failed", slog.String("file", path), slog.Any("err", err))
			errs = append(errs, err)
			continue
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Ratio != rows[b].Ratio {
			return rows[a].Ratio < rows[b].Ratio
		}
		if rows[a].LowerBound != rows[b].LowerBound {
			return rows[a].LowerBound < rows[b].LowerBound
		}
		if rows[a].Colors != rows[b].Colors {
			return rows[a].Colors < rows[b].Colors
		}
		return rows[a].File < rows[b].File
	})
	for _, row := range rows {
		if _, err := fmt.Fprintf(r.out, "%40s%10.6f%8d%8d\n", row.File, row.Ratio, row.LowerBound, row.Colors); err != nil {
			return rows, err
		}
	}

	return rows, errors.Join(errs...)
}

func (r *Runner) tableRow(path string) (TableRow, error) {
	ins, err := r.load(path, true)
	if err != nil {
		return TableRow{}, err
	}
	colors := ins.Len()
	sol, found, err := r.st.Load(ins)
	if err != nil {
		return TableRow{}, err
	}
	if found {
		colors = sol.NumColors()
	}
	row := TableRow{File: path, LowerBound: ins.LowerBound(), Colors: colors}
	if colors > 0 {
		row.Ratio = float64(row.LowerBound) / float64(colors)
	}

	return row, nil
}
