// Package export renders query results as downloadable files.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zakazai/querysim/internal/types"
)

// Format is an export file format
type Format string

const (
	CSV     Format = "csv"
	JSON    Format = "json"
	Parquet Format = "parquet"
	XLSX    Format = "xlsx"
)

// Formats lists every supported format
var Formats = []Format{CSV, JSON, Parquet, XLSX}

// BaseName is the file name stem shared by every export
const BaseName = "query_results"

// ParseFormat maps a user-supplied name to a Format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format: %s", s)
}

// Filename returns query_results.<ext>
func (f Format) Filename() string {
	return BaseName + "." + string(f)
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv"
	case JSON:
		return "application/json"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Write renders res in the given format to w
func Write(w io.Writer, f Format, res *types.Result) error {
	switch f {
	case CSV:
		return writeCSV(w, res)
	case JSON:
		return writeJSON(w, res)
	case Parquet:
		return writeParquet(w, res)
	case XLSX:
		return writeXLSX(w, res)
	}
	return fmt.Errorf("unsupported export format: %s", f)
}

// WriteFile renders res into dir/query_results.<ext> and returns the path
func WriteFile(dir string, f Format, res *types.Result) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, f.Filename())

	if f == Parquet {
		if err := writeParquetFile(path, res); err != nil {
			return "", err
		}
		return path, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Write(file, f, res); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return path, nil
}
