package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"communitypulse/internal/dataset"
)

// XLSXWriter exports datasets to Excel workbooks.
type XLSXWriter struct {
	logger *slog.Logger
}

// NewXLSXWriter creates a new Excel writer instance.
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{logger: logger}
}

// WriteDataset writes a dataset to a single-sheet workbook. The header row
// holds the column names; cells carry the dataset's export rendering.
func (w *XLSXWriter) WriteDataset(path, sheet string, ds *dataset.Dataset) error {
	if sheet == "" {
		sheet = "Members"
	}
	w.logger.Info("writing dataset to XLSX",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", ds.NumRows()))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := setRow(f, sheet, 1, ds.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, record := range ds.Records() {
		if err := setRow(f, sheet, i+2, record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, cell, &values)
}
