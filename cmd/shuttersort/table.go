package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"shuttersort/internal/batch"
)

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printSummary(w io.Writer, summary batch.Summary) {
	if len(summary.Placements) > 0 {
		if isTerminal(w) {
			rows := make([][]string, 0, len(summary.Placements))
			for _, pl := range summary.Placements {
				kind := "photo"
				if pl.Video {
					kind = "video"
				}
				action := "copied"
				if pl.Moved {
					action = "moved"
				}
				rows = append(rows, []string{filepath.Base(pl.Source), pl.Destination, kind, action})
			}
			fmt.Fprintln(w, renderTable([]string{"Source", "Destination", "Type", "Action"}, rows))
		} else {
			for _, pl := range summary.Placements {
				fmt.Fprintf(w, "%s -> %s\n", pl.Source, pl.Destination)
			}
		}
	}
	fmt.Fprintf(w, "Placed %d file(s): %d photo(s), %d video(s); skipped %d\n",
		summary.Placed, summary.Photos, summary.Videos, summary.Skipped)
}
