package field

import (
	"context"
	"sync"
)

func referenceKind() Kind {
	return Kind{
		Type:         Reference,
		Title:        "Reference",
		Description:  "A link to documents in another collection",
		Icon:         "link-2",
		InitialState: []Item{},
		Rules:        ItemsRules,
		Validate:     validateReference,
	}
}

// validateReference only wires the required check. minItems/maxItems are
// declared in ItemsRules but not enforced; enforcement is pending a product
// decision on the intended semantics.
func validateReference(value any, rules Rules, columnName string, _ Options) Result {
	if IsFieldRequired(value, rules.Required) {
		return Result{Value: value, Error: requiredMessage(columnName)}
	}
	return Result{Value: value}
}

// Item is a candidate value offered by a reference editor.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ItemSource loads the candidate items for a reference column, usually the
// documents of the referenced collection.
type ItemSource interface {
	Items(ctx context.Context, collection string) ([]Item, error)
}

// Loader drives the candidate fetch for one reference editor instance. Each
// Open starts a fetch scoped to the editor lifetime; Close (or a reopen)
// cancels the in-flight fetch, and a result that arrives after that is
// discarded instead of applied.
type Loader struct {
	source     ItemSource
	collection string

	mu      sync.Mutex
	gen     int
	cancel  context.CancelFunc
	items   []Item
	loading bool
	err     error
}

// NewLoader creates a loader for the given source and target collection.
func NewLoader(source ItemSource, collection string) *Loader {
	return &Loader{source: source, collection: collection}
}

// Open starts loading candidates, cancelling any fetch still in flight.
func (l *Loader) Open(ctx context.Context) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.loading = true
	l.err = nil
	l.mu.Unlock()

	go func() {
		items, err := l.source.Items(fetchCtx, l.collection)
		cancel()

		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen {
			// The editor was closed or reopened while fetching.
			return
		}
		l.items = items
		l.err = err
		l.loading = false
	}()
}

// Close cancels any in-flight fetch and clears the loading flag.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	l.loading = false
}

// Items returns the last successfully loaded candidates.
func (l *Loader) Items() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]Item, len(l.items))
	copy(items, l.items)
	return items
}

// Loading reports whether a fetch is in flight.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the error of the last completed fetch, if any.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
