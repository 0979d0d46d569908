package export

import (
	"io"
	"strings"

	"github.com/zakazai/querysim/internal/types"
)

// writeCSV emits an unquoted header line and fully quoted data lines.
// encoding/csv only quotes when needed, so lines are assembled by hand.
func writeCSV(w io.Writer, res *types.Result) error {
	lines := make([]string, 0, len(res.Rows)+1)
	lines = append(lines, strings.Join(res.Columns, ","))

	for _, row := range res.Rows {
		cells := make([]string, len(res.Columns))
		for i, col := range res.Columns {
			v := strings.ReplaceAll(types.FormatValue(row[col]), `"`, `""`)
			cells[i] = `"` + v + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
