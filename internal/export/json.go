package export

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/zakazai/querysim/internal/types"
)

// orderedRow marshals a row with keys in column order instead of the
// sorted order encoding/json uses for maps
type orderedRow struct {
	columns []string
	row     types.Row
}

func (o orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, col := range o.columns {
		v, ok := o.row[col]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func orderedRows(res *types.Result) []orderedRow {
	out := make([]orderedRow, len(res.Rows))
	for i, row := range res.Rows {
		out[i] = orderedRow{columns: res.Columns, row: row}
	}
	return out
}

func writeJSON(w io.Writer, res *types.Result) error {
	data, err := json.MarshalIndent(orderedRows(res), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
