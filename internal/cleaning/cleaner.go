package cleaning

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"communitypulse/internal/dataset"
	"communitypulse/internal/validation"
	"communitypulse/pkg/domain"
)

// Cleaner runs the cleaning pipeline over a member dataset.
type Cleaner struct {
	raw    *dataset.Dataset
	clean  *dataset.Dataset
	log    []string
	start  time.Time
	end    time.Time
	logger *slog.Logger
}

// New creates a Cleaner over a copy of the given dataset. The caller's
// dataset is never mutated.
func New(ds *dataset.Dataset, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		raw:    ds.Clone(),
		clean:  ds.Clone(),
		start:  time.Now(),
		logger: logger,
	}
}

// Run executes the selected steps in canonical order and returns the cleaned
// dataset. An empty selection runs the full pipeline. Selection order and
// duplicate selections are irrelevant.
func (c *Cleaner) Run(steps ...Step) *dataset.Dataset {
	selected := make(map[Step]bool, len(steps))
	for _, s := range steps {
		selected[s] = true
	}
	runAll := len(steps) == 0

	for _, step := range canonicalOrder {
		if !runAll && !selected[step] {
			continue
		}
		switch step {
		case StepStandardizeNames:
			c.StandardizeNames()
		case StepFixEmails:
			c.FixEmails()
		case StepRemoveDuplicates:
			c.RemoveDuplicates()
		case StepCleanDates:
			c.CleanDates()
		case StepHandleMissingValues:
			c.HandleMissingValues()
		}
	}

	c.end = time.Now()
	c.logger.Info("cleaning pipeline finished",
		slog.Int("rows_in", c.raw.NumRows()),
		slog.Int("rows_out", c.clean.NumRows()),
		slog.Duration("elapsed", c.end.Sub(c.start)))
	return c.clean
}

// StandardizeNames rewrites the Name column to title case.
func (c *Cleaner) StandardizeNames() {
	applied := c.clean.Apply(domain.ColumnName, func(v dataset.Value) dataset.Value {
		s, ok := v.AsString()
		if !ok {
			return v
		}
		return dataset.String(titleCase(s))
	})
	if !applied {
		return
	}
	c.append("Standardized Names to Title Case.")
}

// FixEmails normalizes the Email column (trim, lowercase, the " at " -> "@"
// corruption fix) and drops rows whose email is still invalid afterwards.
func (c *Cleaner) FixEmails() {
	idx, ok := c.clean.ColumnIndex(domain.ColumnEmail)
	if !ok {
		return
	}

	c.clean.Apply(domain.ColumnEmail, func(v dataset.Value) dataset.Value {
		s, ok := v.AsString()
		if !ok {
			return dataset.Null()
		}
		s = strings.ToLower(strings.TrimSpace(s))
		s = strings.ReplaceAll(s, " at ", "@")
		fixed := dataset.String(s)
		if !validation.IsValidEmail(fixed) {
			return dataset.Null()
		}
		return fixed
	})

	dropped := c.clean.Filter(func(row dataset.Row) bool {
		return !row[idx].IsNull()
	})
	c.append("Fixed email formatting. Removed %d invalid emails.", dropped)
}

// RemoveDuplicates drops rows that are fully identical, then rows whose
// case-normalized email was already seen, keeping the first occurrence.
func (c *Cleaner) RemoveDuplicates() {
	initial := c.clean.NumRows()

	seenRows := make(map[string]bool, initial)
	c.clean.Filter(func(row dataset.Row) bool {
		key := c.clean.RowKey(row)
		if seenRows[key] {
			return false
		}
		seenRows[key] = true
		return true
	})

	if idx, ok := c.clean.ColumnIndex(domain.ColumnEmail); ok {
		seenEmails := make(map[string]bool)
		c.clean.Filter(func(row dataset.Row) bool {
			s, isStr := row[idx].AsString()
			if !isStr {
				// Rows without an email have no identity to collapse on.
				return true
			}
			key := strings.ToLower(strings.TrimSpace(s))
			if seenEmails[key] {
				return false
			}
			seenEmails[key] = true
			return true
		})
	}

	removed := initial - c.clean.NumRows()
	c.append("Removed %d duplicate rows.", removed)
}

// CleanDates parses the Join_Date column into a uniform date type and imputes
// unparseable or missing cells with the column's most frequent valid date.
func (c *Cleaner) CleanDates() {
	if !c.clean.HasColumn(domain.ColumnJoinDate) {
		return
	}

	var missing int
	c.clean.Apply(domain.ColumnJoinDate, func(v dataset.Value) dataset.Value {
		if t, ok := validation.ParseDate(v); ok {
			return dataset.Date(t)
		}
		missing++
		return dataset.Null()
	})

	mode, ok := c.dateMode()
	if missing > 0 && ok {
		c.clean.Apply(domain.ColumnJoinDate, func(v dataset.Value) dataset.Value {
			if v.IsNull() {
				return mode
			}
			return v
		})
		c.append("Standardized Dates. Imputed %d missing/bad dates with mode.", missing)
		return
	}
	c.append("Standardized Dates. No missing values found or mode undefined.")
}

// dateMode returns the most frequent date in Join_Date. Ties break toward
// the first-encountered date in row order.
func (c *Cleaner) dateMode() (dataset.Value, bool) {
	values, ok := c.clean.Column(domain.ColumnJoinDate)
	if !ok {
		return dataset.Null(), false
	}
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	byKey := make(map[string]dataset.Value)
	for i, v := range values {
		if v.IsNull() {
			continue
		}
		key := v.Format()
		if _, seen := counts[key]; !seen {
			firstSeen[key] = i
			byKey[key] = v
		}
		counts[key]++
	}
	bestKey := ""
	bestCount := 0
	for key, n := range counts {
		if n > bestCount || (n == bestCount && firstSeen[key] < firstSeen[bestKey]) {
			bestKey, bestCount = key, n
		}
	}
	if bestCount == 0 {
		return dataset.Null(), false
	}
	return byKey[bestKey], true
}

// HandleMissingValues back-fills missing Event_Attendance counts with zero.
func (c *Cleaner) HandleMissingValues() {
	if !c.clean.HasColumn(domain.ColumnAttendance) {
		return
	}
	filled := 0
	c.clean.Apply(domain.ColumnAttendance, func(v dataset.Value) dataset.Value {
		if v.IsNull() {
			filled++
			return dataset.Int(0)
		}
		return v
	})
	c.append("Filled %d missing Attendance records with 0.", filled)
}

// Raw returns the untouched input snapshot.
func (c *Cleaner) Raw() *dataset.Dataset { return c.raw }

// Clean returns the working dataset in its current state.
func (c *Cleaner) Clean() *dataset.Dataset { return c.clean }

// Log returns the step-completion messages appended so far, in order.
func (c *Cleaner) Log() []string {
	return append([]string(nil), c.log...)
}

// StartedAt returns the pipeline construction time.
func (c *Cleaner) StartedAt() time.Time { return c.start }

// FinishedAt returns the completion time of Run; it is the zero time until
// Run has completed.
func (c *Cleaner) FinishedAt() time.Time { return c.end }

func (c *Cleaner) append(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log = append(c.log, msg)
	c.logger.Info("cleaning step completed", slog.String("message", msg))
}

// titleCase capitalizes the first letter of every word and lowercases the
// rest, with any non-letter acting as a word boundary ("o'brien" becomes
// "O'Brien").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
