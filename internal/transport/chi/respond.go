package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/otissv/fieldkit/internal/domain"
	"github.com/otissv/fieldkit/internal/logger"
	"github.com/otissv/fieldkit/pkg/field"
)

// Envelope is the {data, error} response shape shared with the dashboard.
// Data is always an array and Error an empty string on success.
type Envelope struct {
	Data  any    `json:"data"`
	Error string `json:"error"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Data: data, Error: ""})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Data: []any{}, Error: message})
}

// statusMapping resolves a service error to an HTTP status and the message
// shown to the user. Raw errors never leak: unmapped failures become a
// generic message, with the original logged server-side.
type statusMapping struct {
	sentinel error
	status   int
}

var statusMappings = []statusMapping{
	{domain.ErrDocumentNotFound, http.StatusNotFound},
	{domain.ErrColumnNotFound, http.StatusNotFound},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrAlreadyExists, http.StatusConflict},
	{domain.ErrValidationFailed, http.StatusBadRequest},
	{domain.ErrInvalidSchema, http.StatusBadRequest},
	{field.ErrUnknownFieldKind, http.StatusBadRequest},
}

// handleServiceError converts a use-case error into the envelope. Validation
// failures surface the first field message; other mapped sentinels surface
// their own text; everything else is hidden behind a generic message and
// logged through the request-scoped logger.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs *field.FieldErrors
	if errors.As(err, &fieldErrs) {
		if first, ok := fieldErrs.First(); ok {
			writeError(w, http.StatusBadRequest, first.Message)
			return
		}
	}

	for _, m := range statusMappings {
		if errors.Is(err, m.sentinel) {
			writeError(w, m.status, err.Error())
			return
		}
	}

	logger.FromContext(r.Context()).Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Request failed")
}
