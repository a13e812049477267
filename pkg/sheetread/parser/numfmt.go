package parser

import (
	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// builtInDateFmts lists the built-in number format ids that render dates or
// times, including the CJK locale variants.
var builtInDateFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// IsDateStyle reports whether a cell style formats numbers as dates or times.
func IsDateStyle(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		return IsDateFormat(*style.CustomNumFmt)
	}
	return builtInDateFmts[style.NumFmt]
}

// IsDateFormat reports whether a number format code contains date or time
// tokens. Quoted literals such as "d" do not count.
func IsDateFormat(code string) bool {
	p := nfp.NumberFormatParser()
	for _, section := range p.Parse(code) {
		for _, token := range section.Items {
			switch token.TType {
			case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
				return true
			}
		}
	}
	return false
}
