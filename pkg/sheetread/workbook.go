package sheetread

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
	"github.com/ukaji3/sheetdump-go/pkg/sheetread/parser"
	"github.com/xuri/excelize/v2"
)

// source is the part of *excelize.File the reader uses.
type source interface {
	parser.CellSource
	GetSheetList() []string
	GetActiveSheetIndex() int
	GetSheetDimension(sheet string) (string, error)
	GetWorkbookProps() (excelize.WorkbookPropsOptions, error)
	Rows(sheet string) (*excelize.Rows, error)
	Close() error
}

// opener opens the workbook at path.
type opener func(path string, opts Options) (source, error)

func openFile(path string, opts Options) (source, error) {
	f, err := excelize.OpenFile(path, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Workbook is an opened workbook. It must be closed after use.
type Workbook struct {
	src      source
	path     string
	opts     Options
	log      logrus.FieldLogger
	names    []string
	active   int
	date1904 bool
	closed   bool
}

// Open opens the xlsx workbook at path.
func Open(path string, opts Options) (*Workbook, error) {
	return openWith(openFile, path, opts)
}

func openWith(open opener, path string, opts Options) (*Workbook, error) {
	log := opts.logger().WithField("path", path)

	src, err := open(path, opts)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newReadError(KindFileNotFound, path, "", err)
		}
		return nil, newReadError(KindMalformedWorkbook, path, "", err)
	}

	wb := &Workbook{
		src:  src,
		path: path,
		opts: opts,
		log:  log,
	}

	wb.names = src.GetSheetList()
	if len(wb.names) == 0 {
		closeErr := src.Close()
		return nil, newReadError(KindMalformedWorkbook, path, "", errors.Join(errors.New("workbook has no sheets"), closeErr))
	}

	wb.active = src.GetActiveSheetIndex()
	if wb.active < 0 || wb.active >= len(wb.names) {
		wb.active = 0
	}

	props, err := src.GetWorkbookProps()
	if err != nil {
		closeErr := src.Close()
		return nil, newReadError(KindMalformedWorkbook, path, "", errors.Join(err, closeErr))
	}
	if props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}

	log.WithFields(logrus.Fields{
		"sheets": len(wb.names),
		"active": wb.names[wb.active],
	}).Debug("opened workbook")
	return wb, nil
}

// Path returns the location the workbook was opened from.
func (wb *Workbook) Path() string {
	return wb.path
}

// SheetNames returns the sheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.names))
	copy(names, wb.names)
	return names
}

// ActiveSheet returns the name of the sheet read when no name is given.
func (wb *Workbook) ActiveSheet() string {
	return wb.names[wb.active]
}

// Info describes the workbook.
func (wb *Workbook) Info() models.WorkbookInfo {
	return models.WorkbookInfo{
		BookName:    filepath.Base(wb.path),
		Path:        wb.path,
		SheetNames:  wb.SheetNames(),
		ActiveSheet: wb.ActiveSheet(),
	}
}

// Sheet resolves a sheet by exact, case-sensitive name. An empty name
// resolves to the active sheet.
func (wb *Workbook) Sheet(name string) (*Sheet, error) {
	idx := wb.active
	if name != "" {
		idx = -1
		for i, n := range wb.names {
			if n == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, newReadError(KindSheetNotFound, wb.path, name, excelize.ErrSheetNotExist{SheetName: name})
		}
	}
	return wb.newSheet(idx)
}

// Close releases the workbook. Calling Close more than once is a no-op.
func (wb *Workbook) Close() error {
	if wb.closed {
		return nil
	}
	wb.closed = true
	if err := wb.src.Close(); err != nil {
		return newReadError(KindMalformedWorkbook, wb.path, "", err)
	}
	wb.log.Debug("closed workbook")
	return nil
}
