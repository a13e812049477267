// Package models defines data structures for sheet reading.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Kind identifies which payload of a Value is set.
type Kind int

const (
	// KindEmpty is an absent or blank cell.
	KindEmpty Kind = iota
	// KindText is a string cell, a formula string result or an error literal.
	KindText
	// KindNumber is a numeric cell without a date number format.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindTime is a date-formatted numeric cell or an ISO 8601 date cell.
	KindTime
)

var kindNames = [...]string{"empty", "text", "number", "bool", "time"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// TimeLayout is the layout used to render KindTime values as text.
const TimeLayout = "2006-01-02 15:04:05"

// TimeOfDayLayout renders KindTime values that carry no date part.
const TimeOfDayLayout = "15:04:05"

// IsTimeOfDay reports whether t lies on the 1899-12-30 serial epoch, which
// is how a time-only cell (serial below 1) is stored.
func IsTimeOfDay(t time.Time) bool {
	y, m, d := t.Date()
	return y == 1899 && m == time.December && d == 30
}

// Value is a single typed cell value.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Bool   bool
	Time   time.Time
}

// Empty returns the empty value.
func Empty() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Time returns a temporal value.
func Time(t time.Time) Value { return Value{Kind: KindTime, Time: t} }

// IsEmpty reports whether v holds no value.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// Interface returns the payload as a plain Go value: nil, string, int64 for
// integral numbers, float64, bool or time.Time.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		if math.Abs(v.Number) < 1<<53 && v.Number == math.Trunc(v.Number) {
			return int64(v.Number)
		}
		return v.Number
	case KindBool:
		return v.Bool
	case KindTime:
		return v.Time
	}
	return nil
}

// String renders v the way it appears in a printed row.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return strconv.Quote(v.Text)
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindTime:
		if IsTimeOfDay(v.Time) {
			return v.Time.Format(TimeOfDayLayout)
		}
		return v.Time.Format(TimeLayout)
	}
	return "nil"
}

// MarshalJSON encodes v as null, a string, a number, a bool or an RFC 3339
// timestamp.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindTime {
		return json.Marshal(v.Time.Format(time.RFC3339))
	}
	return json.Marshal(v.Interface())
}
