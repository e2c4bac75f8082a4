package fieldkit

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/otissv/fieldkit/pkg/field"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func seedArticles(t *testing.T, client *Client) Collection {
	t.Helper()
	col, err := client.Collections().Create(context.Background(), "articles",
		ColumnSpec{Name: "title", Type: field.Title},
		ColumnSpec{Name: "count", Type: field.Number},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return col
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithMaxPageSize(25).apply(cfg)
	if cfg.maxPageSize != 25 {
		t.Errorf("maxPageSize = %d, want 25", cfg.maxPageSize)
	}

	WithLogger(slog.Default()).apply(cfg)
	if cfg.logger == nil {
		t.Error("logger not set")
	}

	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg)
	if cfg.metricsReg != reg {
		t.Error("metrics registerer not set")
	}
}

func TestNew_DefaultRegistry(t *testing.T) {
	client := newTestClient(t)

	kinds := client.Registry().Kinds()
	if len(kinds) != 13 {
		t.Errorf("expected 13 built-in kinds, got %d", len(kinds))
	}
}

func TestNew_CustomRegistry(t *testing.T) {
	registry, err := field.NewRegistry(field.Builtin().Kinds()[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client, err := New(WithRegistry(registry))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Collections().Create(context.Background(), "notes",
		ColumnSpec{Name: "when", Type: field.DateTime},
	)
	if !errors.Is(err, ErrUnknownFieldKind) {
		t.Errorf("expected ErrUnknownFieldKind, got %v", err)
	}
}

func TestCollections_RoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created := seedArticles(t, client)
	if created.Revision != 1 || len(created.Columns) != 2 {
		t.Fatalf("unexpected collection: %+v", created)
	}

	got, err := client.Collections().Get(ctx, "articles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Columns[0].Name != "title" || got.Columns[0].Type != field.Title {
		t.Errorf("unexpected first column: %+v", got.Columns[0])
	}

	all, err := client.Collections().List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 collection, got %d", len(all))
	}

	if _, err := client.Collections().Create(ctx, "articles"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}

	if _, err := client.Collections().Rename(ctx, "articles", "posts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Collections().Get(ctx, "articles"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after rename, got %v", err)
	}

	if err := client.Collections().Delete(ctx, "posts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.Collections().Delete(ctx, "posts"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCollections_Ensure(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first, err := client.Collections().Ensure(ctx, "articles",
		ColumnSpec{Name: "title", Type: field.Title},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := client.Collections().Ensure(ctx, "articles",
		ColumnSpec{Name: "title", Type: field.Title},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Revision != first.Revision {
		t.Errorf("ensure changed the collection: %+v vs %+v", first, again)
	}
}

func TestDocuments_InsertAndUpdate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	col := seedArticles(t, client)
	titleID := col.Columns[0].ID
	docs := client.Documents("articles")

	doc, err := docs.Insert(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Values[titleID] != "" {
		t.Errorf("expected empty initial title, got %v", doc.Values[titleID])
	}

	updated, err := docs.Update(ctx, doc.ID, titleID, "Hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Values[titleID] != "Hello world" {
		t.Errorf("unexpected value: %v", updated.Values[titleID])
	}

	_, err = docs.Update(ctx, doc.ID, titleID, "")
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	var fieldErrs *field.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if msg, _ := fieldErrs.Get(titleID); msg != "title field is required" {
		t.Errorf("unexpected message: %q", msg)
	}

	_, err = docs.Update(ctx, doc.ID, "missing", "x")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestDocuments_ListAndSort(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	col := seedArticles(t, client)
	countID := col.Columns[1].ID
	docs := client.Documents("articles")

	var ids []string
	for _, n := range []int{3, 1, 2} {
		doc, err := docs.Insert(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := docs.Update(ctx, doc.ID, countID, n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids = append(ids, doc.ID)
	}

	sorted, err := docs.SortColumn(ctx, countID, "asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sorted[0].ID != ids[1] || sorted[2].ID != ids[0] {
		t.Errorf("unexpected ascending order: %v", sorted)
	}

	page, err := docs.List(ctx, ListQuery{Limit: 2, SortBy: countID, Direction: "asc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 2 || page[0].ID != ids[1] {
		t.Errorf("unexpected page: %v", page)
	}

	if _, err := docs.List(ctx, ListQuery{Direction: "sideways"}); err == nil {
		t.Error("expected error for invalid direction")
	}
}

func TestDocuments_ColumnLifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	col := seedArticles(t, client)
	titleID := col.Columns[0].ID
	docs := client.Documents("articles")

	doc, err := docs.Insert(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	col, err = docs.InsertColumn(ctx, "done", field.Boolean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doneID := col.Columns[2].ID

	listed, err := docs.List(ctx, ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listed[0].Values[doneID] != false {
		t.Errorf("expected backfilled false, got %v", listed[0].Values[doneID])
	}

	newName := "finished"
	col, err = docs.UpdateColumn(ctx, doneID, ColumnChange{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.Columns[2].Name != "finished" {
		t.Errorf("unexpected column name: %q", col.Columns[2].Name)
	}

	col, err = docs.Reorder(ctx, []string{doneID, titleID, col.Columns[1].ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.Columns[0].ID != doneID {
		t.Errorf("unexpected order: %+v", col.Columns)
	}

	col, err = docs.DeleteColumn(ctx, doneID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(col.Columns) != 2 {
		t.Errorf("expected 2 columns to remain, got %d", len(col.Columns))
	}

	if err := docs.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestObserver_PrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, err := New(WithPrometheus(reg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seedArticles(t, client)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	if !names["fieldkit_sdk_operations_total"] {
		t.Errorf("operations counter not registered, got %v", names)
	}
	if !names["fieldkit_sdk_operation_duration_seconds"] {
		t.Errorf("duration histogram not registered, got %v", names)
	}
}

func TestObserver_ValidationOutcomeLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, err := New(WithPrometheus(reg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	col := seedArticles(t, client)
	titleID := col.Columns[0].ID
	docs := client.Documents("articles")

	doc, err := docs.Insert(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := docs.Update(ctx, doc.ID, titleID, ""); err == nil {
		t.Fatal("expected validation failure")
	}
	if _, err := docs.Update(ctx, doc.ID, titleID, "Hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := docs.Update(ctx, doc.ID, "missing", "x"); err == nil {
		t.Fatal("expected unknown column failure")
	}

	ops := client.obs.metrics.operations
	if got := testutil.ToFloat64(ops.WithLabelValues("document.update", "invalid")); got != 1 {
		t.Errorf("invalid count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("document.update", "ok")); got != 1 {
		t.Errorf("ok count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("document.update", "error")); got != 1 {
		t.Errorf("error count = %v, want 1", got)
	}
}

func TestObserver_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(WithPrometheus(reg)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A second client on the same registry reuses the collectors.
	if _, err := New(WithPrometheus(reg)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
