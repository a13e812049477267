package parser

import "github.com/ukaji3/sheetdump-go/pkg/sheetread/models"

// BoundsTracker accumulates the bounding box of non-empty cells while rows
// are streamed through it.
type BoundsTracker struct {
	minRow, maxRow int
	minCol, maxCol int
	seen           bool
}

// Add records the non-empty cells of row rowNum (1-based). Cells are in
// column order starting at column A.
func (b *BoundsTracker) Add(rowNum int, cells []string) {
	for colIdx, cell := range cells {
		if cell == "" {
			continue
		}
		col := colIdx + 1
		if !b.seen {
			b.minRow, b.maxRow = rowNum, rowNum
			b.minCol, b.maxCol = col, col
			b.seen = true
			continue
		}
		if rowNum < b.minRow {
			b.minRow = rowNum
		}
		if rowNum > b.maxRow {
			b.maxRow = rowNum
		}
		if col < b.minCol {
			b.minCol = col
		}
		if col > b.maxCol {
			b.maxCol = col
		}
	}
}

// Range returns the accumulated bounds, or nil if no non-empty cell was seen.
func (b *BoundsTracker) Range() *models.Range {
	if !b.seen {
		return nil
	}
	return &models.Range{R1: b.minRow, C1: b.minCol, R2: b.maxRow, C2: b.maxCol}
}
