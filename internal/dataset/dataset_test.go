package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		kind   Kind
		isNull bool
		format string
	}{
		{name: "null", value: Null(), kind: KindNull, isNull: true, format: ""},
		{name: "string", value: String("hello"), kind: KindString, format: "hello"},
		{name: "int", value: Int(42), kind: KindInt, format: "42"},
		{name: "float", value: Float(3.5), kind: KindFloat, format: "3.5"},
		{
			name:   "date",
			value:  Date(time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)),
			kind:   KindDate,
			format: "2023-01-15",
		},
		{
			name:   "timestamp",
			value:  Time(time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)),
			kind:   KindDate,
			format: "2023-01-15 10:30:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.isNull, tt.value.IsNull())
			assert.Equal(t, tt.format, tt.value.Format())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	day := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, Null().Equal(Null()))
	assert.True(t, String("a").Equal(String("a")))
	assert.True(t, Date(day).Equal(Date(day)))
	assert.False(t, String("a").Equal(String("b")))
	assert.False(t, String("1").Equal(Int(1)))
	assert.False(t, Null().Equal(String("")))
}

func TestDate_TruncatesToDay(t *testing.T) {
	v := Date(time.Date(2023, 1, 15, 23, 59, 59, 0, time.UTC))
	got, ok := v.AsDate()
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func memberFixture(t *testing.T) *Dataset {
	t.Helper()
	ds, err := FromRows(
		[]string{"Name", "Email", "Event_Attendance"},
		[]Row{
			{String("John Doe"), String("john@example.com"), Int(5)},
			{String("Jane Smith"), String("jane@example.com"), Null()},
			{String("John Doe"), String("john@example.com"), Int(5)},
		},
	)
	require.NoError(t, err)
	return ds
}

func TestDataset_AppendRow_WidthMismatch(t *testing.T) {
	ds := New("Name", "Email")
	err := ds.AppendRow(String("only one"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
	assert.Equal(t, 0, ds.NumRows())
}

func TestDataset_ColumnAccess(t *testing.T) {
	ds := memberFixture(t)

	col, ok := ds.Column("Email")
	require.True(t, ok)
	assert.Len(t, col, 3)
	assert.Equal(t, "john@example.com", col[0].Format())

	_, ok = ds.Column("Missing")
	assert.False(t, ok)

	require.NoError(t, ds.SetColumn("Event_Attendance", []Value{Int(1), Int(2), Int(3)}))
	v, ok := ds.At(1, "Event_Attendance")
	require.True(t, ok)
	got, _ := v.AsInt()
	assert.Equal(t, int64(2), got)

	assert.Error(t, ds.SetColumn("Missing", []Value{Null()}))
	assert.Error(t, ds.SetColumn("Name", []Value{Null()}))
}

func TestDataset_Apply(t *testing.T) {
	ds := memberFixture(t)

	applied := ds.Apply("Name", func(v Value) Value {
		return String("X")
	})
	assert.True(t, applied)
	col, _ := ds.Column("Name")
	for _, v := range col {
		assert.Equal(t, "X", v.Format())
	}

	assert.False(t, ds.Apply("Missing", func(v Value) Value { return v }))
}

func TestDataset_Filter(t *testing.T) {
	ds := memberFixture(t)
	idx, ok := ds.ColumnIndex("Event_Attendance")
	require.True(t, ok)

	removed := ds.Filter(func(row Row) bool {
		return !row[idx].IsNull()
	})
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, ds.NumRows())
}

func TestDataset_Clone_IsIndependent(t *testing.T) {
	ds := memberFixture(t)
	clone := ds.Clone()

	clone.Apply("Name", func(Value) Value { return String("changed") })
	clone.Filter(func(Row) bool { return false })

	assert.Equal(t, 3, ds.NumRows())
	v, _ := ds.At(0, "Name")
	assert.Equal(t, "John Doe", v.Format())
	assert.Equal(t, 0, clone.NumRows())
}

func TestDataset_Counts(t *testing.T) {
	ds := memberFixture(t)

	assert.Equal(t, 9, ds.CellCount())
	assert.Equal(t, 1, ds.NullCount())
	assert.Equal(t, 2, ds.UniqueRowCount())

	empty := New("A", "B")
	assert.Equal(t, 0, empty.CellCount())
	assert.Equal(t, 0, empty.NullCount())
	assert.Equal(t, 0, empty.UniqueRowCount())
}

func TestDataset_Records(t *testing.T) {
	ds := memberFixture(t)
	records := ds.Records()

	require.Len(t, records, 3)
	assert.Equal(t, []string{"John Doe", "john@example.com", "5"}, records[0])
	assert.Equal(t, []string{"Jane Smith", "jane@example.com", ""}, records[1])
}
