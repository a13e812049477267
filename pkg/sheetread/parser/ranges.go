// Package parser turns raw workbook content into typed sheet data.
package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference like $A$1:$D$10 or a single cell
// reference like B2 into coordinates.
func ParseRange(ref string) (*models.Range, error) {
	// Remove $ signs
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return nil, fmt.Errorf("empty range reference")
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return nil, fmt.Errorf("invalid range reference %q", ref)
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, err
	}

	r := &models.Range{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
	if r.R1 > r.R2 {
		r.R1, r.R2 = r.R2, r.R1
	}
	if r.C1 > r.C2 {
		r.C1, r.C2 = r.C2, r.C1
	}
	return r, nil
}

// FormatRange renders r in A1:D10 notation. A single-cell range renders as
// one cell reference.
func FormatRange(r models.Range) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(r.C1, r.R1)
	if err != nil {
		return "", err
	}
	if r.R1 == r.R2 && r.C1 == r.C2 {
		return startCell, nil
	}
	endCell, err := excelize.CoordinatesToCellName(r.C2, r.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}
