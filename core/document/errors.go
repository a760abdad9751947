package document

import "errors"

var (
	// ErrInvalidDocument is returned when the input is not a zip container.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrMissingBody is returned when the container has no word/document.xml.
	ErrMissingBody = errors.New("document body not found")
)
