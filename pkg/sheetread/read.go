package sheetread

import (
	"errors"

	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
)

// Handler receives the events of ReadSheet in order: Workbook once, Sheet
// once, then Row for every row. Returning ErrStop from any method ends the
// read without error; any other error aborts it and is returned.
type Handler interface {
	Workbook(info models.WorkbookInfo) error
	Sheet(info models.SheetInfo) error
	Row(row models.Row) error
}

// HandlerFuncs adapts plain functions to a Handler. Nil fields are skipped.
type HandlerFuncs struct {
	WorkbookFunc func(info models.WorkbookInfo) error
	SheetFunc    func(info models.SheetInfo) error
	RowFunc      func(row models.Row) error
}

func (h HandlerFuncs) Workbook(info models.WorkbookInfo) error {
	if h.WorkbookFunc == nil {
		return nil
	}
	return h.WorkbookFunc(info)
}

func (h HandlerFuncs) Sheet(info models.SheetInfo) error {
	if h.SheetFunc == nil {
		return nil
	}
	return h.SheetFunc(info)
}

func (h HandlerFuncs) Row(row models.Row) error {
	if h.RowFunc == nil {
		return nil
	}
	return h.RowFunc(row)
}

// ReadSheet opens the workbook at path, reports its sheet names, resolves
// opts.SheetName (or the active sheet), reports the sheet and streams its
// rows to h. The workbook is closed on every path.
func ReadSheet(path string, opts Options, h Handler) error {
	return readSheet(openFile, path, opts, h)
}

func readSheet(open opener, path string, opts Options, h Handler) (err error) {
	wb, err := openWith(open, path, opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, wb.Close())
	}()

	if err := h.Workbook(wb.Info()); err != nil {
		return stopped(err)
	}

	sheet, err := wb.Sheet(opts.SheetName)
	if err != nil {
		return err
	}
	if err := h.Sheet(sheet.Info()); err != nil {
		return stopped(err)
	}

	for row, err := range sheet.Rows() {
		if err != nil {
			return err
		}
		if err := h.Row(row); err != nil {
			return stopped(err)
		}
	}
	return nil
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

// ReadAll reads the whole sheet into memory.
func ReadAll(path string, opts Options) (*models.SheetDump, error) {
	dump := &models.SheetDump{Rows: []models.Row{}}
	err := ReadSheet(path, opts, HandlerFuncs{
		WorkbookFunc: func(info models.WorkbookInfo) error {
			dump.Workbook = info
			return nil
		},
		SheetFunc: func(info models.SheetInfo) error {
			dump.Sheet = info
			return nil
		},
		RowFunc: func(row models.Row) error {
			dump.Rows = append(dump.Rows, row)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return dump, nil
}
