package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"m/d/yy h:mm", true},
		{"h:mm:ss", true},
		{"[h]:mm:ss", true},
		{"mmm d, yyyy", true},
		{"0.00", false},
		{"#,##0", false},
		{"@", false},
		{`0.0" days"`, false},
	}

	for _, tt := range tests {
		result := IsDateFormat(tt.code)
		if result != tt.expected {
			t.Errorf("IsDateFormat(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestIsDateStyle(t *testing.T) {
	custom := "dd/mm/yyyy"
	percent := "0.0%"
	tests := []struct {
		style    *excelize.Style
		expected bool
	}{
		{nil, false},
		{&excelize.Style{NumFmt: 0}, false},
		{&excelize.Style{NumFmt: 14}, true},
		{&excelize.Style{NumFmt: 22}, true},
		{&excelize.Style{NumFmt: 2}, false},
		{&excelize.Style{NumFmt: 164, CustomNumFmt: &custom}, true},
		{&excelize.Style{NumFmt: 164, CustomNumFmt: &percent}, false},
	}

	for i, tt := range tests {
		result := IsDateStyle(tt.style)
		if result != tt.expected {
			t.Errorf("case %d: IsDateStyle = %v, expected %v", i, result, tt.expected)
		}
	}
}
