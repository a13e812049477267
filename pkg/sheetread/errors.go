package sheetread

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the requested sheet name matches no sheet.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrMalformedWorkbook indicates any other failure opening or reading the
// workbook: a corrupt or unsupported container, a wrong password, or I/O.
var ErrMalformedWorkbook = errors.New("malformed workbook")

// ErrStop may be returned by a Handler to end ReadSheet early without error.
var ErrStop = errors.New("stop reading")

// Kind classifies a ReadError.
type Kind int

const (
	// KindMalformedWorkbook covers every failure that is not one of the below.
	KindMalformedWorkbook Kind = iota
	// KindFileNotFound means the path does not resolve to an existing file.
	KindFileNotFound
	// KindSheetNotFound means a sheet name was given that the workbook lacks.
	KindSheetNotFound
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "FileNotFound"
	case KindSheetNotFound:
		return "SheetNotFound"
	}
	return "MalformedWorkbook"
}

func (k Kind) sentinel() error {
	switch k {
	case KindFileNotFound:
		return ErrFileNotFound
	case KindSheetNotFound:
		return ErrSheetNotFound
	}
	return ErrMalformedWorkbook
}

// ReadError represents a failure to open or read a workbook.
type ReadError struct {
	Kind  Kind
	Path  string
	Sheet string
	Err   error
}

func (e *ReadError) Error() string {
	switch e.Kind {
	case KindFileNotFound:
		return fmt.Sprintf("file not found: %s", e.Path)
	case KindSheetNotFound:
		return fmt.Sprintf("sheet %q not found in %s", e.Sheet, e.Path)
	}
	if e.Sheet != "" {
		return fmt.Sprintf("malformed workbook %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("malformed workbook %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *ReadError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newReadError(kind Kind, path, sheet string, err error) *ReadError {
	return &ReadError{
		Kind:  kind,
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}

// KindOf returns the kind of the first ReadError in err's chain.
func KindOf(err error) (Kind, bool) {
	var re *ReadError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return KindMalformedWorkbook, false
}
