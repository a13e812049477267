package models

// WorkbookInfo describes an opened workbook.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Path is the location the workbook was opened from.
	Path string `json:"path"`
	// SheetNames lists sheet names in workbook order.
	SheetNames []string `json:"sheet_names"`
	// ActiveSheet is the name of the default sheet.
	ActiveSheet string `json:"active_sheet"`
}
