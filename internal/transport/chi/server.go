// Package chi exposes the collection and document services over HTTP. Every
// response uses the {data, error} envelope the dashboard expects.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	domdoc "github.com/otissv/fieldkit/internal/domain/document"
	collectionuc "github.com/otissv/fieldkit/internal/usecase/collection"
	documentuc "github.com/otissv/fieldkit/internal/usecase/document"
	"github.com/otissv/fieldkit/pkg/field"
)

// Server carries the use-case services behind the HTTP handlers.
type Server struct {
	collections  *collectionuc.Service
	documents    *documentuc.Service
	logger       *zap.Logger
	defaultLimit int
}

// NewServer creates an HTTP API server.
func NewServer(collections *collectionuc.Service, documents *documentuc.Service, logger *zap.Logger) *Server {
	return &Server{collections: collections, documents: documents, logger: logger}
}

// WithDefaultPageSize overrides the page size used when a listing request
// names none.
func (s *Server) WithDefaultPageSize(size int) *Server {
	if size > 0 {
		s.defaultLimit = size
	}
	return s
}

// Routes mounts all API handlers on a fresh router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.healthz)
	r.Route("/collections", func(r chi.Router) {
		r.Get("/", s.listCollections)
		r.Post("/", s.createCollection)
		r.Route("/{collection}", func(r chi.Router) {
			r.Patch("/", s.renameCollection)
			r.Delete("/", s.deleteCollection)

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", s.listDocuments)
				r.Post("/", s.insertRow)
				r.Delete("/", s.deleteRows)
				r.Patch("/{document}", s.updateData)
			})

			r.Route("/columns", func(r chi.Router) {
				r.Post("/", s.insertColumn)
				r.Put("/order", s.updateColumnOrder)
				r.Patch("/{column}", s.updateColumn)
				r.Delete("/{column}", s.deleteColumn)
				r.Get("/{column}/sort", s.sortColumn)
			})
		})
	})
	return r
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, []string{"ok"})
}

// --- Collections ---

type createCollectionRequest struct {
	Name    string `json:"name"`
	Columns []struct {
		Name string     `json:"name"`
		Type field.Type `json:"type"`
	} `json:"columns"`
}

func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	cols, err := s.collections.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, collectionsToDTO(cols))
}

func (s *Server) createCollection(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	specs := make([]collectionuc.ColumnSpec, 0, len(req.Columns))
	for _, c := range req.Columns {
		specs = append(specs, collectionuc.ColumnSpec{Name: c.Name, Type: c.Type})
	}
	col, err := s.collections.Create(r.Context(), req.Name, specs)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, collectionsToDTO([]domcol.Collection{col}))
}

func (s *Server) renameCollection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	col, err := s.collections.Rename(r.Context(), chi.URLParam(r, "collection"), req.Name)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, collectionsToDTO([]domcol.Collection{col}))
}

func (s *Server) deleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := s.collections.Delete(r.Context(), chi.URLParam(r, "collection")); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, []any{})
}

// --- Documents ---

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	docs, err := s.documents.List(r.Context(), chi.URLParam(r, "collection"), params.Query)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, documentsToDTO(docs))
}

func (s *Server) insertRow(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.InsertRow(r.Context(), chi.URLParam(r, "collection"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, documentsToDTO([]domdoc.Document{doc}))
}

func (s *Server) updateData(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ColumnID string `json:"columnId"`
		Value    any    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc, err := s.documents.UpdateData(
		r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "document"),
		req.ColumnID, req.Value,
	)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, documentsToDTO([]domdoc.Document{doc}))
}

func (s *Server) deleteRows(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.documents.DeleteRows(r.Context(), chi.URLParam(r, "collection"), req.IDs...); err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, []any{})
}

// --- Columns ---

func (s *Server) insertColumn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string     `json:"name"`
		Type field.Type `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	col, err := s.documents.InsertColumn(r.Context(), chi.URLParam(r, "collection"), req.Name, req.Type)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, collectionsToDTO([]domcol.Collection{col}))
}

func (s *Server) updateColumn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       *string       `json:"name"`
		Options    field.Options `json:"fieldOptions"`
		Validation *field.Rules  `json:"validation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	col, err := s.documents.UpdateColumn(
		r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "column"),
		documentuc.ColumnChange{Name: req.Name, Options: req.Options, Rules: req.Validation},
	)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, collectionsToDTO([]domcol.Collection{col}))
}

func (s *Server) deleteColumn(w http.ResponseWriter, r *http.Request) {
	col, err := s.documents.DeleteColumn(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "column"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, collectionsToDTO([]domcol.Collection{col}))
}

func (s *Server) sortColumn(w http.ResponseWriter, r *http.Request) {
	direction := stringParam(r.URL.Query().Get("direction"), DefaultDirection)
	docs, err := s.documents.SortColumn(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "column"), direction)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, documentsToDTO(docs))
}

func (s *Server) updateColumnOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	col, err := s.documents.UpdateColumnOrder(r.Context(), chi.URLParam(r, "collection"), req.IDs)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, collectionsToDTO([]domcol.Collection{col}))
}
