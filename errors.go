package fieldkit

import (
	"github.com/otissv/fieldkit/internal/domain"
	"github.com/otissv/fieldkit/pkg/field"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrAlreadyExists    = domain.ErrAlreadyExists
	ErrInvalidSchema    = domain.ErrInvalidSchema
	ErrDocumentNotFound = domain.ErrDocumentNotFound
	ErrColumnNotFound   = domain.ErrColumnNotFound
	ErrValidationFailed = domain.ErrValidationFailed
	ErrUnknownFieldKind = field.ErrUnknownFieldKind
)
