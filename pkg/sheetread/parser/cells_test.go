package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
	"github.com/xuri/excelize/v2"
)

// openFixture saves f to a temporary file and reopens it, so values are read
// back the way they are stored on disk.
func openFixture(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func readRows(t *testing.T, f *excelize.File, sheetName string, formulas bool, firstCol, lastCol int) [][]models.Value {
	t.Helper()
	rows, err := f.Rows(sheetName)
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	defer rows.Close()

	cp := NewCellParser(f, sheetName, false, formulas)
	var result [][]models.Value
	rowNum := 0
	for rows.Next() {
		rowNum++
		raw, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("Columns failed: %v", err)
		}
		cells, err := cp.ParseRow(rowNum, raw, firstCol, lastCol)
		if err != nil {
			t.Fatalf("ParseRow failed: %v", err)
		}
		result = append(result, cells)
	}
	return result
}

func TestParseRowTypes(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", 100)
	f.SetCellValue(sheetName, "C1", 200.5)
	f.SetCellValue(sheetName, "D1", true)
	f.SetCellValue(sheetName, "E1", false)
	f.SetCellValue(sheetName, "F1", day)
	f.SetCellValue(sheetName, "A2", "123")

	rows := readRows(t, openFixture(t, f), sheetName, false, 1, 0)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	tests := []struct {
		cell     models.Value
		expected models.Value
	}{
		{rows[0][0], models.Text("Header1")},
		{rows[0][1], models.Number(100)},
		{rows[0][2], models.Number(200.5)},
		{rows[0][3], models.Bool(true)},
		{rows[0][4], models.Bool(false)},
		// A numeric-looking string stays text.
		{rows[1][0], models.Text("123")},
	}
	for i, tt := range tests {
		if tt.cell != tt.expected {
			t.Errorf("case %d: expected %#v, got %#v", i, tt.expected, tt.cell)
		}
	}

	got := rows[0][5]
	if got.Kind != models.KindTime {
		t.Fatalf("Expected time value, got %v (kind %v)", got, got.Kind)
	}
	if !got.Time.Truncate(time.Second).Equal(day) {
		t.Errorf("Expected %v, got %v", day, got.Time)
	}
}

func TestParseRowPadding(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "x")
	f.SetCellValue(sheetName, "C3", 3)

	rows := readRows(t, openFixture(t, f), sheetName, false, 1, 4)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 4 {
			t.Errorf("row %d: expected 4 cells, got %d", i+1, len(row))
		}
	}
	if rows[0][0] != models.Text("x") {
		t.Errorf("Expected \"x\", got %v", rows[0][0])
	}
	for _, v := range rows[1] {
		if !v.IsEmpty() {
			t.Errorf("Expected empty gap row, got %v", rows[1])
			break
		}
	}
	if rows[2][2] != models.Number(3) {
		t.Errorf("Expected 3, got %v", rows[2][2])
	}
	if !rows[2][3].IsEmpty() {
		t.Errorf("Expected padding cell to be empty, got %v", rows[2][3])
	}
}

func TestParseRowColumnWindow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "outside")
	f.SetCellValue(sheetName, "B1", "x")
	f.SetCellValue(sheetName, "C2", 1)
	f.SetCellValue(sheetName, "E2", "wide")

	rows := readRows(t, openFixture(t, f), sheetName, false, 2, 3)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	first := []models.Value{models.Text("x"), models.Empty()}
	if len(rows[0]) != len(first) || rows[0][0] != first[0] || rows[0][1] != first[1] {
		t.Errorf("Expected %v, got %v", first, rows[0])
	}
	// A stored row wider than the window keeps its extra cells.
	second := []models.Value{models.Empty(), models.Number(1), models.Empty(), models.Text("wide")}
	if len(rows[1]) != len(second) {
		t.Fatalf("Expected %d cells, got %v", len(second), rows[1])
	}
	for i := range second {
		if rows[1][i] != second[i] {
			t.Errorf("cell %d: expected %#v, got %#v", i, second[i], rows[1][i])
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	timeFmt := "h:mm"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &timeFmt})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue(sheetName, "A1", 0.5)
	f.SetCellStyle(sheetName, "A1", "A1", styleID)

	rows := readRows(t, openFixture(t, f), sheetName, false, 1, 0)
	got := rows[0][0]
	if got.Kind != models.KindTime {
		t.Fatalf("Expected time value, got %#v", got)
	}
	if got.String() != "12:00:00" {
		t.Errorf("Expected time-of-day rendering 12:00:00, got %s", got.String())
	}
}

func TestParseFormulas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", 10)
	f.SetCellValue(sheetName, "B1", 20)
	f.SetCellValue(sheetName, "C1", 30)
	if err := f.SetCellFormula(sheetName, "C1", "SUM(A1:B1)"); err != nil {
		t.Fatalf("SetCellFormula failed: %v", err)
	}
	fx := openFixture(t, f)

	cached := readRows(t, fx, sheetName, false, 1, 0)
	if cached[0][2] != models.Text("30") {
		t.Errorf("Expected cached result \"30\", got %#v", cached[0][2])
	}

	formulas := readRows(t, fx, sheetName, true, 1, 0)
	if formulas[0][2] != models.Text("=SUM(A1:B1)") {
		t.Errorf("Expected formula text, got %#v", formulas[0][2])
	}
	if formulas[0][0] != models.Number(10) {
		t.Errorf("Expected plain value 10, got %#v", formulas[0][0])
	}
}

func TestParseCustomDateFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	dateFmt := "yyyy-mm-dd"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue(sheetName, "A1", 45306)
	f.SetCellStyle(sheetName, "A1", "A1", styleID)
	f.SetCellValue(sheetName, "B1", 45306)

	rows := readRows(t, openFixture(t, f), sheetName, false, 1, 0)
	expected := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if rows[0][0].Kind != models.KindTime || !rows[0][0].Time.Equal(expected) {
		t.Errorf("Expected %v, got %#v", expected, rows[0][0])
	}
	if rows[0][1] != models.Number(45306) {
		t.Errorf("Expected unformatted number, got %#v", rows[0][1])
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"1", models.Bool(true)},
		{"0", models.Bool(false)},
		{"TRUE", models.Bool(true)},
		{"false", models.Bool(false)},
		{"maybe", models.Text("maybe")},
	}

	for _, tt := range tests {
		result := parseBool(tt.input)
		if result != tt.expected {
			t.Errorf("parseBool(%q) = %#v, expected %#v", tt.input, result, tt.expected)
		}
	}
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15T10:30:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		result := parseISODate(tt.input)
		if result.Kind != models.KindTime || !result.Time.Equal(tt.expected) {
			t.Errorf("parseISODate(%q) = %#v, expected %v", tt.input, result, tt.expected)
		}
	}

	if v := parseISODate("not a date"); v != models.Text("not a date") {
		t.Errorf("Expected text fallback, got %#v", v)
	}
}
