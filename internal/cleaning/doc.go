// Package cleaning implements the member-data cleaning pipeline.
//
// A Cleaner owns an immutable snapshot of its input and a working copy that
// the steps transform. Steps are individually callable and idempotent on
// their own output; Run executes a selection of steps in a fixed canonical
// order because later steps depend on earlier ones (names and emails are
// standardized before duplicate detection so case and format variants of the
// same identity collapse into one duplicate group).
//
// A step whose target column is absent is a silent no-op. Steps never fail on
// empty datasets; malformed cells are handled by each step's own policy
// (drop, impute or zero-fill), not by error returns.
package cleaning
