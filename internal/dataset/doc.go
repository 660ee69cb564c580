// Package dataset provides the in-memory tabular data model shared by the
// cleaning pipeline and the health metrics engine.
//
// A Dataset is an ordered set of named columns over an ordered list of rows.
// Cells are tagged Value types so a column can hold heterogeneous data before
// cleaning (for example a Join_Date column mixing ISO strings, US-format
// strings and native dates) and a uniform type after.
//
// Datasets are not safe for concurrent use. The cleaning pipeline and the
// metrics engine each work on their own copy obtained via Clone.
package dataset
