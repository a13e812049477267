package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
)

// Separator is the line printed between report sections.
var Separator = strings.Repeat("-", 50)

// TextPrinter writes the human-readable console report. Rows are written as
// they arrive.
type TextPrinter struct {
	w    io.Writer
	path string
}

// NewTextPrinter returns a TextPrinter writing to w.
func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{w: w}
}

func (p *TextPrinter) Workbook(info models.WorkbookInfo) error {
	p.path = info.Path
	if _, err := fmt.Fprintf(p.w, "Available sheets: [%s]\n", strings.Join(info.SheetNames, ", ")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.w, Separator)
	return err
}

func (p *TextPrinter) Sheet(info models.SheetInfo) error {
	_, err := fmt.Fprintf(p.w, "Reading from: %s\nSheet name: %s\nDimensions: %s\n%s\n",
		p.path, info.Name, info.Dimension, Separator)
	return err
}

func (p *TextPrinter) Row(row models.Row) error {
	_, err := fmt.Fprintln(p.w, row.String())
	return err
}

// Flush is a no-op; rows are written as they arrive.
func (p *TextPrinter) Flush() error {
	return nil
}
