package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/zakazai/querysim/internal/types"
)

// SheetName is the worksheet results are written to
const SheetName = "Sheet1"

func writeXLSX(w io.Writer, res *types.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, col := range res.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, col); err != nil {
			return err
		}
	}

	for r, row := range res.Rows {
		for i, col := range res.Columns {
			v, ok := row[col]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
