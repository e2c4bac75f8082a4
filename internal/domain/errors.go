package domain

import "errors"

var (
	// ErrNotFound signals a missing collection.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate collection.
	ErrAlreadyExists = errors.New("already exists")
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrColumnNotFound signals a missing column.
	ErrColumnNotFound = errors.New("column not found")
	// ErrInvalidSchema signals an invalid collection or column definition.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrValidationFailed signals a field value rejected by its kind.
	ErrValidationFailed = errors.New("validation failed")
)
