package dataset

import (
	"strconv"
	"time"
)

// Kind identifies the type of data held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindDate
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value is a single tagged cell. The zero value is the null cell.
type Value struct {
	kind Kind
	str  string
	num  float64
	date time.Time
}

// Null returns the explicit "no value" marker.
func Null() Value {
	return Value{kind: KindNull}
}

// String returns a string-valued cell.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns an integer-valued cell.
func Int(i int64) Value {
	return Value{kind: KindInt, num: float64(i)}
}

// Float returns a float-valued cell.
func Float(f float64) Value {
	return Value{kind: KindFloat, num: f}
}

// Date returns a date-valued cell, truncated to day precision in UTC.
func Date(t time.Time) Value {
	return Value{kind: KindDate, date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Time returns a timestamp-valued cell with full precision. It shares the
// date kind; only the truncation differs.
func Time(t time.Time) Value {
	return Value{kind: KindDate, date: t.UTC()}
}

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the cell holds no value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload. The second result is false when the
// cell is not string-valued.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInt returns the integer payload, truncating a float payload.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt && v.kind != KindFloat {
		return 0, false
	}
	return int64(v.num), true
}

// AsFloat returns the numeric payload of an int or float cell.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindInt && v.kind != KindFloat {
		return 0, false
	}
	return v.num, true
}

// AsDate returns the date payload.
func (v Value) AsDate() (time.Time, bool) {
	return v.date, v.kind == KindDate
}

// Format renders the cell for tabular export. Null renders as the empty
// string, dates as ISO 2006-01-02 (with a time suffix when present).
func (v Value) Format() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFloat:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindDate:
		if v.date.Hour() == 0 && v.date.Minute() == 0 && v.date.Second() == 0 {
			return v.date.Format("2006-01-02")
		}
		return v.date.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Equal reports whether two cells hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindInt, KindFloat:
		return v.num == o.num
	case KindDate:
		return v.date.Equal(o.date)
	default:
		return false
	}
}

// key returns a representation usable for row-equality hashing. The kind tag
// is included so String("1") and Int(1) stay distinct.
func (v Value) key() string {
	return v.kind.String() + ":" + v.Format()
}
