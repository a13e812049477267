package models

// SheetInfo describes the sheet selected for reading.
type SheetInfo struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Index is the 0-based position in the workbook's sheet list.
	Index int `json:"index"`
	// Dimension is the declared range reference, e.g. "A1:C2".
	Dimension string `json:"dimension"`
	// Bounds is Dimension parsed to coordinates (nil if absent or unparseable).
	Bounds *Range `json:"bounds,omitempty"`
	// Active reports whether this is the workbook's active sheet.
	Active bool `json:"active"`
}

// SheetDump is a complete read of one sheet.
type SheetDump struct {
	Workbook WorkbookInfo `json:"workbook"`
	Sheet    SheetInfo    `json:"sheet"`
	Rows     []Row        `json:"rows"`
}
