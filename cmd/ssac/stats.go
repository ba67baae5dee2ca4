package main

import (
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"ssac/internal/ir"
)

// statsTable lays out pass statistics with a header row
func statsTable(stats []ir.PassStat) pterm.TableData {
	data := pterm.TableData{{"Round", "Pass", "Before", "After", "Changed"}}
	for _, stat := range stats {
		data = append(data, []string{
			strconv.Itoa(stat.Round),
			stat.Pass,
			strconv.Itoa(stat.Before),
			strconv.Itoa(stat.After),
			strconv.FormatBool(stat.Changed),
		})
	}
	return data
}

func renderStats(w io.Writer, stats []ir.PassStat) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(statsTable(stats)).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, table+"\n")
	return err
}
