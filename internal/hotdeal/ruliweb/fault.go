package ruliweb

import "fmt"

// ExtractionFault is a row whose markup broke an assumption of the extractor.
// The row is dropped; the rest of the page is still extracted.
type ExtractionFault struct {
	Row   int
	Field string
	Err   error
}

func (f *ExtractionFault) Error() string {
	return fmt.Sprintf("row %d: field %s: %v", f.Row, f.Field, f.Err)
}

func (f *ExtractionFault) Unwrap() error {
	return f.Err
}
