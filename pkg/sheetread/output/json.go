// Package output renders sheet reads as a console report or as JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/sheetdump-go/pkg/sheetread/models"
)

// ToJSON serializes v to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// JSONPrinter collects a sheet read and writes it as one JSON document on
// Flush.
type JSONPrinter struct {
	w      io.Writer
	pretty bool
	dump   models.SheetDump
}

// NewJSONPrinter returns a JSONPrinter writing to w.
func NewJSONPrinter(w io.Writer, pretty bool) *JSONPrinter {
	return &JSONPrinter{
		w:      w,
		pretty: pretty,
		dump:   models.SheetDump{Rows: []models.Row{}},
	}
}

func (p *JSONPrinter) Workbook(info models.WorkbookInfo) error {
	p.dump.Workbook = info
	return nil
}

func (p *JSONPrinter) Sheet(info models.SheetInfo) error {
	p.dump.Sheet = info
	return nil
}

func (p *JSONPrinter) Row(row models.Row) error {
	p.dump.Rows = append(p.dump.Rows, row)
	return nil
}

// Flush writes the collected document.
func (p *JSONPrinter) Flush() error {
	data, err := ToJSON(&p.dump, p.pretty)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = p.w.Write(data)
	return err
}
