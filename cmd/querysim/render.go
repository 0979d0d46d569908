package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/zakazai/querysim/internal/session"
	"github.com/zakazai/querysim/internal/types"
)

// renderResult prints a SELECT as a table and anything else as its message
func renderResult(out io.Writer, res *types.Result) error {
	if res.Operation != types.OpSelect {
		fmt.Fprintln(out, res.Message)
		fmt.Fprintf(out, "(%dms)\n", res.ExecutionTimeMs)
		return nil
	}

	if len(res.Rows) == 0 {
		fmt.Fprintln(out, "Empty result set")
	} else {
		data := pterm.TableData{res.Columns}
		for _, row := range res.Rows {
			cells := make([]string, len(res.Columns))
			for i, col := range res.Columns {
				cells[i] = types.FormatValue(row[col])
			}
			data = append(data, cells)
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
	}
	fmt.Fprintf(out, "%d row(s) from %s in %dms\n", res.RowCount, res.Dataset, res.ExecutionTimeMs)
	return nil
}

func renderDatasets(out io.Writer, datasets []*types.Dataset, selected string) error {
	data := pterm.TableData{{"", "Name", "Rows", "Columns", "Description"}}
	for _, ds := range datasets {
		marker := ""
		if ds.Name == selected {
			marker = "*"
		}
		data = append(data, []string{marker, ds.Name, fmt.Sprint(len(ds.Rows)), fmt.Sprint(len(ds.Columns)), ds.Description})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, table)
	return nil
}

func renderHistory(out io.Writer, history []session.HistoryEntry) error {
	if len(history) == 0 {
		fmt.Fprintln(out, "No queries yet")
		return nil
	}
	data := pterm.TableData{{"ID", "Time", "Rows", "ms", "Query"}}
	for _, h := range history {
		data = append(data, []string{
			h.ID[:min(8, len(h.ID))],
			h.Timestamp.Format("15:04:05"),
			fmt.Sprint(h.RowCount),
			fmt.Sprint(h.ExecutionTimeMs),
			h.Query,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, table)
	return nil
}

func renderStats(out io.Writer, st session.Stats) {
	fmt.Fprintf(out, "Dataset:       %s\n", st.Dataset)
	fmt.Fprintf(out, "Total records: %d\n", st.TotalRows)
	fmt.Fprintf(out, "Queries run:   %d\n", st.QueryCount)
	fmt.Fprintf(out, "Avg speed:     %dms\n", st.AvgExecutionMs)
}
