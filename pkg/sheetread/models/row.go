package models

import "strings"

// Row is one sheet row in column order starting at column A.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds one value per column.
	Cells []Value `json:"cells"`
}

// Values returns the row's cells as plain Go values.
func (r Row) Values() []interface{} {
	out := make([]interface{}, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Interface()
	}
	return out
}

// String renders the row as a parenthesised tuple, e.g. (1, "a", true).
func (r Row) String() string {
	parts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
