// Package health scores data quality across three dimensions: completeness,
// uniqueness and formatting validity, combined into a weighted composite.
package health

import (
	"math"
	"time"

	"communitypulse/internal/dataset"
	"communitypulse/internal/validation"
	"communitypulse/pkg/domain"
)

// Composite weights. Fixed design constants, not configurable.
const (
	weightCompleteness = 0.4
	weightDuplicates   = 0.3
	weightFormatting   = 0.3
)

// Metrics computes health scores over a snapshot of a dataset. The snapshot
// is private; score methods are pure and repeatable.
type Metrics struct {
	ds         *dataset.Dataset
	capturedAt time.Time
}

// New creates a metrics engine over a copy of the given dataset. The
// caller's dataset is never mutated by evaluation.
func New(ds *dataset.Dataset) *Metrics {
	return &Metrics{
		ds:         ds.Clone(),
		capturedAt: time.Now(),
	}
}

// CompletenessScore is the percentage of non-null cells. An empty dataset
// scores 0.0.
func (m *Metrics) CompletenessScore() float64 {
	total := m.ds.CellCount()
	if total == 0 {
		return 0.0
	}
	nonNull := total - m.ds.NullCount()
	return float64(nonNull) / float64(total) * 100
}

// DuplicateScore is the percentage of rows remaining after collapsing
// full-row duplicates. An empty dataset scores 100.0: no rows means no
// duplicates.
func (m *Metrics) DuplicateScore() float64 {
	total := m.ds.NumRows()
	if total == 0 {
		return 100.0
	}
	return float64(m.ds.UniqueRowCount()) / float64(total) * 100
}

// FormattingScore averages per-column validity percentages over whichever of
// the Email, Join_Date and Name columns are present, each contributing
// equally. With none of those columns present the score is a vacuous 100.0.
func (m *Metrics) FormattingScore() float64 {
	if m.ds.NumRows() == 0 {
		return 100.0
	}
	rows := float64(m.ds.NumRows())
	var scores []float64

	if values, ok := m.ds.Column(domain.ColumnEmail); ok {
		valid := 0
		for _, v := range values {
			if validation.IsValidEmail(v) {
				valid++
			}
		}
		scores = append(scores, float64(valid)/rows*100)
	}
	if m.ds.HasColumn(domain.ColumnJoinDate) {
		valid := validation.CountValidDates(m.ds, domain.ColumnJoinDate)
		scores = append(scores, float64(valid)/rows*100)
	}
	if values, ok := m.ds.Column(domain.ColumnName); ok {
		valid := 0
		for _, v := range values {
			if validation.IsValidName(v) {
				valid++
			}
		}
		scores = append(scores, float64(valid)/rows*100)
	}

	if len(scores) == 0 {
		return 100.0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// OverallScore is the weighted composite 0.4*completeness + 0.3*duplicates +
// 0.3*formatting, rounded to one decimal place.
func (m *Metrics) OverallScore() float64 {
	overall := m.CompletenessScore()*weightCompleteness +
		m.DuplicateScore()*weightDuplicates +
		m.FormattingScore()*weightFormatting
	return round1(overall)
}

// CapturedAt returns the time the snapshot was taken.
func (m *Metrics) CapturedAt() time.Time { return m.capturedAt }

// Report is a consistent snapshot of all counts and scores for display or
// before/after diffing.
type Report struct {
	TotalRecords      int       `json:"total_records"`
	TotalCells        int       `json:"total_cells"`
	NullCells         int       `json:"null_cells"`
	NonNullCells      int       `json:"non_null_cells"`
	DuplicateRecords  int       `json:"duplicate_records"`
	UniqueRecords     int       `json:"unique_records"`
	CompletenessScore float64   `json:"completeness_score"`
	DuplicateScore    float64   `json:"duplicate_score"`
	FormattingScore   float64   `json:"formatting_score"`
	OverallScore      float64   `json:"overall_score"`
	CapturedAt        time.Time `json:"captured_at"`
}

// Report computes the detailed metrics report. Component scores are rounded
// to one decimal place for presentation.
func (m *Metrics) Report() Report {
	totalRecords := m.ds.NumRows()
	totalCells := m.ds.CellCount()
	nullCells := m.ds.NullCount()
	unique := m.ds.UniqueRowCount()

	return Report{
		TotalRecords:      totalRecords,
		TotalCells:        totalCells,
		NullCells:         nullCells,
		NonNullCells:      totalCells - nullCells,
		DuplicateRecords:  totalRecords - unique,
		UniqueRecords:     unique,
		CompletenessScore: round1(m.CompletenessScore()),
		DuplicateScore:    round1(m.DuplicateScore()),
		FormattingScore:   round1(m.FormattingScore()),
		OverallScore:      m.OverallScore(),
		CapturedAt:        m.capturedAt,
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
