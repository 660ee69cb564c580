package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"communitypulse/internal/dataset"
)

// CSVWriter provides CSV export for datasets.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	BOMPrefix bool // add a UTF-8 BOM for Excel compatibility
}

// WriteDataset writes a dataset to a CSV file, header row first, cells in
// the dataset's export rendering (nulls as empty cells, dates as ISO).
func (w *CSVWriter) WriteDataset(path string, ds *dataset.Dataset, options WriteOptions) error {
	w.logger.Info("writing dataset to CSV",
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumCols()))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(ds.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, record := range ds.Records() {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// StreamWriter writes dataset rows to CSV one at a time, for exports too
// large to buffer.
type StreamWriter struct {
	file   *os.File
	writer *csv.Writer
}

// CreateStreamWriter opens a CSV file and writes the column header,
// returning a writer for row-at-a-time output.
func (w *CSVWriter) CreateStreamWriter(path string, columns []string) (*StreamWriter, error) {
	w.logger.Info("creating CSV stream writer",
		slog.String("path", path),
		slog.Int("columns", len(columns)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return &StreamWriter{file: file, writer: writer}, nil
}

// WriteRow appends a single dataset row.
func (s *StreamWriter) WriteRow(row dataset.Row) error {
	record := make([]string, len(row))
	for i, v := range row {
		record[i] = v.Format()
	}
	return s.writer.Write(record)
}

// Close flushes and closes the stream writer.
func (s *StreamWriter) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

// ReadCSV imports a CSV file into a dataset. The first record is the column
// set; empty cells import as nulls and everything else as strings. A BOM
// prefix on the first column name is stripped.
func ReadCSV(path string) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file %s has no header row", path)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = stripBOM(header[0])
	}

	ds := dataset.New(header...)
	for i, record := range records[1:] {
		row := make([]dataset.Value, len(record))
		for j, cell := range record {
			if cell == "" {
				row[j] = dataset.Null()
			} else {
				row[j] = dataset.String(cell)
			}
		}
		if err := ds.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return ds, nil
}

func stripBOM(s string) string {
	if len(s) >= 3 && s[0] == 0xEF && s[1] == 0xBB && s[2] == 0xBF {
		return s[3:]
	}
	return s
}
