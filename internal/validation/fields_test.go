package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communitypulse/internal/dataset"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		value dataset.Value
		want  bool
	}{
		{name: "plain address", value: dataset.String("john@example.com"), want: true},
		{name: "plus and dots", value: dataset.String("first.last+tag@mail-host.co.uk"), want: true},
		{name: "surrounding whitespace", value: dataset.String("  jane@test.com  "), want: true},
		{name: "missing at sign", value: dataset.String("invalid-email"), want: false},
		{name: "corrupted at", value: dataset.String("alice at example.com"), want: false},
		{name: "one letter tld", value: dataset.String("a@b.c"), want: false},
		{name: "empty string", value: dataset.String(""), want: false},
		{name: "null", value: dataset.Null(), want: false},
		{name: "non-string", value: dataset.Int(5), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.value))
		})
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		value dataset.Value
		want  bool
	}{
		{name: "simple", value: dataset.String("John Doe"), want: true},
		{name: "apostrophe", value: dataset.String("Patrick O'Brien"), want: true},
		{name: "hyphenated", value: dataset.String("Mary-Jane Watson"), want: true},
		{name: "initial with period", value: dataset.String("J. Smith"), want: true},
		{name: "lowercase still valid", value: dataset.String("john doe"), want: true},
		{name: "digits", value: dataset.String("123invalid"), want: false},
		{name: "empty", value: dataset.String(""), want: false},
		{name: "whitespace only", value: dataset.String("   "), want: false},
		{name: "null", value: dataset.Null(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidName(tt.value))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value dataset.Value
		want  time.Time
		ok    bool
	}{
		{
			name:  "iso",
			value: dataset.String("2023-01-15"),
			want:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "us format",
			value: dataset.String("12/25/2022"),
			want:  time.Date(2022, 12, 25, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "euro format",
			value: dataset.String("25-12-2022"),
			want:  time.Date(2022, 12, 25, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "native date",
			value: dataset.Date(time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)),
			want:  time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "unknown sentinel", value: dataset.String("Unknown"), ok: false},
		{name: "noise", value: dataset.String("Invalid Date"), ok: false},
		{name: "empty", value: dataset.String(""), ok: false},
		{name: "null", value: dataset.Null(), ok: false},
		{name: "numeric", value: dataset.Int(20230115), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountValidDates(t *testing.T) {
	ds, err := dataset.FromRows(
		[]string{"Join_Date"},
		[]dataset.Row{
			{dataset.String("2023-01-15")},
			{dataset.String("Unknown")},
			{dataset.String("12/25/2022")},
			{dataset.Null()},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, CountValidDates(ds, "Join_Date"))
	assert.Equal(t, 0, CountValidDates(ds, "Missing_Column"))

	empty := dataset.New("Join_Date")
	assert.Equal(t, 0, CountValidDates(empty, "Join_Date"))
}
