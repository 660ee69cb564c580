// Package validation provides the field-level validity predicates shared by
// the cleaning pipeline and the health metrics engine. All predicates are
// pure and operate on a single cell.
package validation

import (
	"regexp"
	"strings"
	"time"

	"communitypulse/internal/dataset"
)

var (
	// emailPattern accepts localpart@domain.tld: letters/digits/._%+- in the
	// local part, letters/digits/./- in the domain, a TLD of two or more
	// letters. Structural only, no DNS lookups.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// namePattern accepts letters, whitespace, apostrophes, periods and
	// hyphens, covering names like "O'Brien" and "Mary-Jane".
	namePattern = regexp.MustCompile(`^[a-zA-Z\s'.-]+$`)
)

// dateLayouts are the accepted Join_Date encodings: ISO, US MM/DD/YYYY and
// European DD-MM-YYYY, plus full RFC 3339 timestamps.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// IsValidEmail reports whether the cell holds a structurally valid email
// address. Null cells are invalid.
func IsValidEmail(v dataset.Value) bool {
	if v.IsNull() {
		return false
	}
	s, ok := v.AsString()
	if !ok {
		return false
	}
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsValidName reports whether the cell holds a plausible person name. Casing
// is not enforced; null and empty cells are invalid.
func IsValidName(v dataset.Value) bool {
	if v.IsNull() {
		return false
	}
	s, ok := v.AsString()
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return len(s) > 0 && namePattern.MatchString(s)
}

// ParseDate attempts to interpret a cell as a calendar date. Date-typed cells
// pass through; string cells are tried against each accepted layout. The
// sentinel "Unknown" and any other unparseable text fail.
func ParseDate(v dataset.Value) (time.Time, bool) {
	if t, ok := v.AsDate(); ok {
		return t, true
	}
	s, ok := v.AsString()
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidDate reports whether the cell parses as a calendar date.
func IsValidDate(v dataset.Value) bool {
	_, ok := ParseDate(v)
	return ok
}

// CountValidDates returns how many cells of the named column parse as dates.
// A missing column counts as zero valid dates rather than an error.
func CountValidDates(d *dataset.Dataset, column string) int {
	values, ok := d.Column(column)
	if !ok {
		return 0
	}
	n := 0
	for _, v := range values {
		if IsValidDate(v) {
			n++
		}
	}
	return n
}
