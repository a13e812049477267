// Package sheetread opens xlsx workbooks and streams the rows of one sheet
// as typed cell values.
package sheetread

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures how a workbook is opened and read.
type Options struct {
	// SheetName selects the sheet by exact, case-sensitive name.
	// If empty, the workbook's active sheet is read.
	SheetName string
	// Password opens an encrypted workbook.
	Password string
	// Formulas makes formula cells yield their formula text (e.g. "=SUM(A1:A2)")
	// instead of the cached result.
	Formulas bool
	// Logger receives debug events. If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// DefaultOptions returns options that read the active sheet's cached values.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
