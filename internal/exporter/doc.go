// Package exporter provides flat tabular import and export for member
// datasets.
//
// CSVWriter writes datasets to CSV with optional UTF-8 BOM for Excel
// compatibility and a streaming mode for large exports. ReadCSV imports a
// CSV file back into a dataset, leaving cells untyped (strings and nulls);
// typing is the cleaning pipeline's job. XLSXWriter writes datasets to an
// Excel workbook.
package exporter
