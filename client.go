package fieldkit

import (
	"context"

	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	domdoc "github.com/otissv/fieldkit/internal/domain/document"
	"github.com/otissv/fieldkit/internal/repository/memory"
	collectionuc "github.com/otissv/fieldkit/internal/usecase/collection"
	documentuc "github.com/otissv/fieldkit/internal/usecase/document"
	"github.com/otissv/fieldkit/pkg/field"
)

// Внутренние интерфейсы для подмены в тестах.
type collectionUseCase interface {
	Create(ctx context.Context, name string, specs []collectionuc.ColumnSpec) (domcol.Collection, error)
	Get(ctx context.Context, name string) (domcol.Collection, error)
	List(ctx context.Context) ([]domcol.Collection, error)
	Rename(ctx context.Context, name, newName string) (domcol.Collection, error)
	Delete(ctx context.Context, name string) error
}

type documentUseCase interface {
	List(ctx context.Context, collection string, q documentuc.Query) ([]domdoc.Document, error)
	InsertRow(ctx context.Context, collection string) (domdoc.Document, error)
	UpdateData(ctx context.Context, collection, docID, columnID string, value any) (domdoc.Document, error)
	DeleteRows(ctx context.Context, collection string, ids ...string) error
	InsertColumn(ctx context.Context, collection, name string, ft field.Type) (domcol.Collection, error)
	UpdateColumn(ctx context.Context, collection, columnID string, change documentuc.ColumnChange) (domcol.Collection, error)
	DeleteColumn(ctx context.Context, collection, columnID string) (domcol.Collection, error)
	SortColumn(ctx context.Context, collection, columnID, direction string) ([]domdoc.Document, error)
	UpdateColumnOrder(ctx context.Context, collection string, orderedIDs []string) (domcol.Collection, error)
}

// Client is the fieldkit SDK entry point. It wires the collection and
// document services over an in-process store, so a schema-driven content
// backend can be embedded without running the HTTP server.
type Client struct {
	registry *field.Registry
	collSvc  collectionUseCase
	docSvc   documentUseCase
	obs      *observer
}

// New creates a fieldkit Client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	registry := cfg.registry
	if registry == nil {
		registry = field.Builtin()
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	docRepo := memory.NewDocuments()
	collRepo := memory.NewCollections(docRepo)

	docSvc := documentuc.New(docRepo, collRepo, registry)
	if cfg.maxPageSize > 0 {
		docSvc = docSvc.WithMaxLimit(cfg.maxPageSize)
	}

	return &Client{
		registry: registry,
		collSvc:  collectionuc.New(collRepo, registry),
		docSvc:   docSvc,
		obs:      obs,
	}, nil
}

// Registry returns the field kind registry the client validates with.
func (c *Client) Registry() *field.Registry {
	return c.registry
}

// Collections returns the collection management service.
func (c *Client) Collections() *CollectionService {
	return &CollectionService{svc: c.collSvc, obs: c.obs}
}

// Documents returns the document service for a given collection.
func (c *Client) Documents(collection string) *DocumentService {
	return &DocumentService{
		collection: collection,
		svc:        c.docSvc,
		obs:        c.obs,
	}
}
