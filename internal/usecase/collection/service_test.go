package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/otissv/fieldkit/internal/domain"
	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	"github.com/otissv/fieldkit/internal/domain/column"
	"github.com/otissv/fieldkit/pkg/field"
)

// --- Mocks ---

type mockRepo struct {
	created      domcol.Collection
	getResult    domcol.Collection
	listResult   []domcol.Collection
	renameResult domcol.Collection
	createErr    error
	getErr       error
	listErr      error
	renameErr    error
	deleteErr    error
	deletedName  string
}

func (m *mockRepo) Create(_ context.Context, col domcol.Collection) error {
	m.created = col
	return m.createErr
}

func (m *mockRepo) Get(_ context.Context, _ string) (domcol.Collection, error) {
	return m.getResult, m.getErr
}

func (m *mockRepo) List(_ context.Context) ([]domcol.Collection, error) {
	return m.listResult, m.listErr
}

func (m *mockRepo) Rename(_ context.Context, _, _ string) (domcol.Collection, error) {
	return m.renameResult, m.renameErr
}

func (m *mockRepo) Delete(_ context.Context, name string) error {
	m.deletedName = name
	return m.deleteErr
}

func makeCollection(t *testing.T, name string) domcol.Collection {
	t.Helper()
	col, err := domcol.New(name, nil)
	if err != nil {
		t.Fatalf("domcol.New: %v", err)
	}
	return col
}

// --- Tests ---

func TestCreate_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, field.Builtin())

	col, err := svc.Create(context.Background(), "articles", []ColumnSpec{
		{Name: "title", Type: field.Title},
		{Name: "body", Type: field.RichText},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.Name() != "articles" {
		t.Errorf("expected name 'articles', got %q", col.Name())
	}
	if len(col.Columns()) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(col.Columns()))
	}
	if repo.created.Name() != "articles" {
		t.Error("expected the collection to reach the repository")
	}
}

func TestCreate_SeedsColumnRuleDefaults(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, field.Builtin())

	col, err := svc.Create(context.Background(), "articles", []ColumnSpec{
		{Name: "title", Type: field.Title},
		{Name: "note", Type: field.Text},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	title, _ := col.ColumnByName("title")
	if !title.Rules().Required {
		t.Error("expected title column to seed required=true")
	}
	note, _ := col.ColumnByName("note")
	if note.Rules().Required {
		t.Error("expected text column to seed required=false")
	}
}

func TestCreate_UnknownFieldKind(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, field.Builtin())

	_, err := svc.Create(context.Background(), "articles", []ColumnSpec{
		{Name: "x", Type: "hologram"},
	})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !errors.Is(err, domain.ErrInvalidSchema) {
		t.Errorf("expected ErrInvalidSchema, got %v", err)
	}
	if !errors.Is(err, field.ErrUnknownFieldKind) {
		t.Errorf("expected ErrUnknownFieldKind in chain, got %v", err)
	}
}

func TestCreate_InvalidName(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, field.Builtin())

	_, err := svc.Create(context.Background(), "bad name", nil)
	if err == nil {
		t.Fatal("expected error for invalid collection name")
	}
	if !errors.Is(err, domain.ErrInvalidSchema) {
		t.Errorf("expected ErrInvalidSchema, got %v", err)
	}
}

func TestCreate_RepoError(t *testing.T) {
	repo := &mockRepo{createErr: domain.ErrAlreadyExists}
	svc := New(repo, field.Builtin())

	_, err := svc.Create(context.Background(), "articles", nil)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_ConfiguredColumnCap(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, field.Builtin()).WithSchemaLimits(2, 0)

	_, err := svc.Create(context.Background(), "articles", []ColumnSpec{
		{Name: "a", Type: field.Text},
		{Name: "b", Type: field.Text},
		{Name: "c", Type: field.Text},
	})
	if !errors.Is(err, domain.ErrInvalidSchema) {
		t.Errorf("expected ErrInvalidSchema over the column cap, got %v", err)
	}

	if _, err := svc.Create(context.Background(), "articles", []ColumnSpec{
		{Name: "a", Type: field.Text},
		{Name: "b", Type: field.Text},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreate_ConfiguredNameLengthCap(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, field.Builtin()).WithSchemaLimits(0, 8)

	_, err := svc.Create(context.Background(), "articles", []ColumnSpec{
		{Name: "very_long_name", Type: field.Text},
	})
	if !errors.Is(err, domain.ErrInvalidSchema) {
		t.Errorf("expected ErrInvalidSchema for long column name, got %v", err)
	}
}

func TestWithSchemaLimits_IgnoresValuesOverCeiling(t *testing.T) {
	svc := New(&mockRepo{}, field.Builtin()).WithSchemaLimits(1000, 1000)

	if svc.maxColumns != domcol.MaxColumns {
		t.Errorf("maxColumns = %d, want ceiling %d", svc.maxColumns, domcol.MaxColumns)
	}
	if svc.maxNameLen != column.MaxNameLen {
		t.Errorf("maxNameLen = %d, want ceiling %d", svc.maxNameLen, column.MaxNameLen)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockRepo{getErr: domain.ErrNotFound}
	svc := New(repo, field.Builtin())

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	repo := &mockRepo{listResult: []domcol.Collection{
		makeCollection(t, "a"),
		makeCollection(t, "b"),
	}}
	svc := New(repo, field.Builtin())

	cols, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cols) != 2 {
		t.Errorf("expected 2 collections, got %d", len(cols))
	}
}

func TestRename_Success(t *testing.T) {
	repo := &mockRepo{renameResult: makeCollection(t, "posts")}
	svc := New(repo, field.Builtin())

	col, err := svc.Rename(context.Background(), "articles", "posts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.Name() != "posts" {
		t.Errorf("expected renamed collection, got %q", col.Name())
	}
}

func TestDelete_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, field.Builtin())

	if err := svc.Delete(context.Background(), "articles"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deletedName != "articles" {
		t.Errorf("expected delete to reach the repository, got %q", repo.deletedName)
	}
}
