package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
	"github.com/xuri/excelize/v2"
)

// CellSource is the part of *excelize.File needed to type cell values.
type CellSource interface {
	GetCellType(sheet, cell string) (excelize.CellType, error)
	GetCellStyle(sheet, cell string) (int, error)
	GetStyle(idx int) (*excelize.Style, error)
	GetCellFormula(sheet, cell string) (string, error)
}

// CellParser converts raw cell content of one sheet into typed values.
type CellParser struct {
	src      CellSource
	sheet    string
	date1904 bool
	formulas bool

	// dateStyles caches IsDateStyle per style id.
	dateStyles map[int]bool
}

// NewCellParser returns a parser for sheetName. When formulas is true,
// formula cells yield their formula text instead of the cached result.
func NewCellParser(src CellSource, sheetName string, date1904, formulas bool) *CellParser {
	return &CellParser{
		src:        src,
		sheet:      sheetName,
		date1904:   date1904,
		formulas:   formulas,
		dateStyles: make(map[int]bool),
	}
}

// ParseRow types the raw values of row rowNum (1-based). raw holds the
// stored cells starting at column A. The result covers columns firstCol
// through lastCol, extended to the last stored cell when the row is wider;
// missing cells are empty.
func (p *CellParser) ParseRow(rowNum int, raw []string, firstCol, lastCol int) ([]models.Value, error) {
	if firstCol < 1 {
		firstCol = 1
	}
	if len(raw) > lastCol {
		lastCol = len(raw)
	}
	if lastCol < firstCol {
		return []models.Value{}, nil
	}
	cells := make([]models.Value, 0, lastCol-firstCol+1)
	for col := firstCol; col <= lastCol; col++ {
		var s string
		if col <= len(raw) {
			s = raw[col-1]
		}
		v, err := p.Parse(col, rowNum, s)
		if err != nil {
			return nil, err
		}
		cells = append(cells, v)
	}
	return cells, nil
}

// Parse types the raw (unformatted) value of the cell at col, row.
func (p *CellParser) Parse(col, row int, raw string) (models.Value, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Empty(), err
	}

	if p.formulas {
		formula, err := p.src.GetCellFormula(p.sheet, cellName)
		if err != nil {
			return models.Empty(), err
		}
		if formula != "" {
			return models.Text("=" + formula), nil
		}
	}

	if raw == "" {
		return models.Empty(), nil
	}

	cellType, err := p.src.GetCellType(p.sheet, cellName)
	if err != nil {
		return models.Empty(), err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return parseBool(raw), nil
	case excelize.CellTypeDate:
		return parseISODate(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.Text(raw), nil
	}

	// Number or untyped cell
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return models.Text(raw), nil
	}
	isDate, err := p.isDateCell(cellName)
	if err != nil {
		return models.Empty(), err
	}
	if isDate {
		// Serials below 1 are times of day; both date systems share the
		// 1899-12-30 epoch for them.
		date1904 := p.date1904 && n >= 1
		if t, err := excelize.ExcelDateToTime(n, date1904); err == nil {
			return models.Time(t), nil
		}
	}
	return models.Number(n), nil
}

func (p *CellParser) isDateCell(cellName string) (bool, error) {
	styleID, err := p.src.GetCellStyle(p.sheet, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := p.dateStyles[styleID]; ok {
		return isDate, nil
	}
	style, err := p.src.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := IsDateStyle(style)
	p.dateStyles[styleID] = isDate
	return isDate, nil
}

// parseBool reads a boolean cell. Anything other than the stored 1/0 or
// TRUE/FALSE forms is kept as text.
func parseBool(s string) models.Value {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1", "TRUE":
		return models.Bool(true)
	case "0", "FALSE":
		return models.Bool(false)
	}
	return models.Text(s)
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

// parseISODate reads a t="d" cell, which stores an ISO 8601 string.
func parseISODate(s string) models.Value {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.Time(t)
		}
	}
	return models.Text(s)
}
