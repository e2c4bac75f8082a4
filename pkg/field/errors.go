package field

import "fmt"

// FieldError is one field-level issue from a validation pass.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// FieldErrors collects field-level issues from a single validation pass,
// keyed by path and ordered by insertion. The document form surfaces only
// the first entry (fail-fast); the rest are kept for callers that want them.
type FieldErrors struct {
	byPath map[string]string
	order  []FieldError
}

// NewFieldErrors creates an empty collection.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{byPath: make(map[string]string)}
}

// Add records an issue for a field path. The first message per path wins.
func (e *FieldErrors) Add(path, message string) {
	if _, exists := e.byPath[path]; exists {
		return
	}
	e.byPath[path] = message
	e.order = append(e.order, FieldError{Path: path, Message: message})
}

// Get returns the message recorded for a path.
func (e *FieldErrors) Get(path string) (string, bool) {
	msg, ok := e.byPath[path]
	return msg, ok
}

// First returns the earliest recorded issue.
func (e *FieldErrors) First() (FieldError, bool) {
	if len(e.order) == 0 {
		return FieldError{}, false
	}
	return e.order[0], true
}

// Entries returns all issues in insertion order.
func (e *FieldErrors) Entries() []FieldError {
	entries := make([]FieldError, len(e.order))
	copy(entries, e.order)
	return entries
}

// Len returns the number of recorded issues.
func (e *FieldErrors) Len() int { return len(e.order) }

// Error implements error, reporting the first issue and the total count.
func (e *FieldErrors) Error() string {
	first, ok := e.First()
	if !ok {
		return "validation failed"
	}
	if len(e.order) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", first.Path, first.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (and %d more)", first.Path, first.Message, len(e.order)-1)
}
