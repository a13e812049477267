package sheetread

import (
	"iter"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
	"github.com/ukaji3/sheetdump-go/pkg/sheetread/parser"
	"github.com/xuri/excelize/v2"
)

// Sheet is a resolved sheet of an open Workbook.
type Sheet struct {
	wb   *Workbook
	info models.SheetInfo
	log  logrus.FieldLogger
}

func (wb *Workbook) newSheet(idx int) (*Sheet, error) {
	name := wb.names[idx]
	log := wb.log.WithField("sheet", name)

	dim, err := wb.src.GetSheetDimension(name)
	if err != nil {
		return nil, newReadError(KindMalformedWorkbook, wb.path, name, err)
	}

	s := &Sheet{
		wb:  wb,
		log: log,
		info: models.SheetInfo{
			Name:      name,
			Index:     idx,
			Dimension: dim,
			Active:    idx == wb.active,
		},
	}

	if dim == "" {
		// No <dimension> element: fall back to the used range.
		bounds, err := s.usedRange()
		if err != nil {
			return nil, err
		}
		if bounds != nil {
			if s.info.Dimension, err = parser.FormatRange(*bounds); err != nil {
				return nil, s.readError(err)
			}
		}
		log.WithField("dimension", s.info.Dimension).Debug("sheet declares no dimension, using used range")
	}

	if s.info.Dimension != "" {
		bounds, err := parser.ParseRange(s.info.Dimension)
		if err != nil {
			log.WithError(err).Debug("unparseable dimension")
		} else {
			s.info.Bounds = bounds
		}
	}

	log.WithField("dimension", s.info.Dimension).Debug("resolved sheet")
	return s, nil
}

// Info describes the sheet.
func (s *Sheet) Info() models.SheetInfo {
	return s.info
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.info.Name
}

// Dimension returns the declared range reference, e.g. "A1:C2".
func (s *Sheet) Dimension() string {
	return s.info.Dimension
}

// Rows returns the sheet's rows top to bottom, starting at the dimension's
// first row. Each row starts at the dimension's first column and is padded
// to its last column; a wider stored row keeps its extra cells. Without a
// dimension, rows start at A1. Rows are
// read as the sequence is consumed; stopping early releases the row reader.
// A read failure is yielded once as the final element.
func (s *Sheet) Rows() iter.Seq2[models.Row, error] {
	return func(yield func(models.Row, error) bool) {
		rows, err := s.wb.src.Rows(s.info.Name)
		if err != nil {
			yield(models.Row{}, s.readError(err))
			return
		}
		defer rows.Close()

		firstRow, firstCol, lastCol := 1, 1, 0
		if b := s.info.Bounds; b != nil {
			firstRow, firstCol, lastCol = b.R1, b.C1, b.C2
		}
		cp := parser.NewCellParser(s.wb.src, s.info.Name, s.wb.date1904, s.wb.opts.Formulas)

		rowNum := 0
		for rows.Next() {
			rowNum++
			raw, err := rows.Columns(excelize.Options{RawCellValue: true})
			if err != nil {
				yield(models.Row{}, s.readError(err))
				return
			}
			if rowNum < firstRow {
				continue
			}
			cells, err := cp.ParseRow(rowNum, raw, firstCol, lastCol)
			if err != nil {
				yield(models.Row{}, s.readError(err))
				return
			}
			if !yield(models.Row{R: rowNum, Cells: cells}, nil) {
				s.log.WithField("rows", rowNum).Debug("row reading stopped early")
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(models.Row{}, s.readError(err))
			return
		}
		s.log.WithField("rows", rowNum).Debug("read all rows")
	}
}

// usedRange scans the sheet for the bounding box of non-empty cells.
func (s *Sheet) usedRange() (*models.Range, error) {
	rows, err := s.wb.src.Rows(s.info.Name)
	if err != nil {
		return nil, s.readError(err)
	}
	defer rows.Close()

	var bt parser.BoundsTracker
	rowNum := 0
	for rows.Next() {
		rowNum++
		raw, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, s.readError(err)
		}
		bt.Add(rowNum, raw)
	}
	if err := rows.Error(); err != nil {
		return nil, s.readError(err)
	}
	return bt.Range(), nil
}

func (s *Sheet) readError(err error) error {
	return newReadError(KindMalformedWorkbook, s.wb.path, s.info.Name, err)
}
