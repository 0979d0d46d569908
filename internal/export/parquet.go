package export

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/zakazai/querysim/internal/types"
)

// ParquetRow stores one result row. Columns vary per dataset, so the row
// itself is kept as a JSON object.
type ParquetRow struct {
	Dataset  string `parquet:"name=dataset, type=BYTE_ARRAY, convertedtype=UTF8"`
	DataJSON string `parquet:"name=data_json, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func writeParquet(w io.Writer, res *types.Result) error {
	pw, err := writer.NewParquetWriterFromWriter(w, new(ParquetRow), 4)
	if err != nil {
		return fmt.Errorf("failed to create Parquet writer: %w", err)
	}
	return writeParquetRows(pw, res)
}

func writeParquetFile(path string, res *types.Result) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create Parquet file: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(ParquetRow), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create Parquet writer: %w", err)
	}
	if err := writeParquetRows(pw, res); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

func writeParquetRows(pw *writer.ParquetWriter, res *types.Result) error {
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range orderedRows(res) {
		data, err := row.MarshalJSON()
		if err != nil {
			return err
		}
		if err := pw.Write(&ParquetRow{Dataset: res.Dataset, DataJSON: string(data)}); err != nil {
			return fmt.Errorf("failed to write Parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finish Parquet file: %w", err)
	}
	return nil
}
