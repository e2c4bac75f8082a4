// Package store provides the ordered key-value containers behind collection
// lists and per-document column state. Every mutator installs a fresh
// snapshot, so values handed out by read accessors never alias the store's
// internals and a view always observes a consistent version.
package store

// KeyFunc derives the key for a list entry.
type KeyFunc[T any] func(T) string

// Entry pairs a key with its value.
type Entry[T any] struct {
	Key   string
	Value T
}

type listSnapshot[T any] struct {
	order []string
	items map[string]T
}

// List is an ordered store over a slice of records keyed by a KeyFunc.
// Reads are pure over the current snapshot; writes copy-on-write.
type List[T any] struct {
	keyOf KeyFunc[T]
	snap  *listSnapshot[T]
}

// NewList creates a list store from an initial ordered slice. A later entry
// with a duplicate key replaces the earlier one in place.
func NewList[T any](keyOf KeyFunc[T], initial ...T) *List[T] {
	l := &List[T]{keyOf: keyOf, snap: &listSnapshot[T]{items: map[string]T{}}}
	if len(initial) > 0 {
		l.Add(initial...)
	}
	return l
}

func (l *List[T]) clone() *listSnapshot[T] {
	next := &listSnapshot[T]{
		order: make([]string, len(l.snap.order)),
		items: make(map[string]T, len(l.snap.items)),
	}
	copy(next.order, l.snap.order)
	for k, v := range l.snap.items {
		next.items[k] = v
	}
	return next
}

// Get returns the value stored under key.
func (l *List[T]) Get(key string) (T, bool) {
	v, ok := l.snap.items[key]
	return v, ok
}

// Has reports whether key is present.
func (l *List[T]) Has(key string) bool {
	_, ok := l.snap.items[key]
	return ok
}

// Size returns the number of entries.
func (l *List[T]) Size() int { return len(l.snap.order) }

// Keys returns the keys in order.
func (l *List[T]) Keys() []string {
	keys := make([]string, len(l.snap.order))
	copy(keys, l.snap.order)
	return keys
}

// Values returns the values in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, len(l.snap.order))
	for _, k := range l.snap.order {
		values = append(values, l.snap.items[k])
	}
	return values
}

// Entries returns key-value pairs in order.
func (l *List[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], 0, len(l.snap.order))
	for _, k := range l.snap.order {
		entries = append(entries, Entry[T]{Key: k, Value: l.snap.items[k]})
	}
	return entries
}

// Data returns an ordered copy of the values, isolated from later mutation.
func (l *List[T]) Data() []T { return l.Values() }

// Add appends values, keyed by the store's KeyFunc. An existing key is
// replaced in place, keeping its position.
func (l *List[T]) Add(values ...T) {
	next := l.clone()
	for _, v := range values {
		key := l.keyOf(v)
		if _, exists := next.items[key]; !exists {
			next.order = append(next.order, key)
		}
		next.items[key] = v
	}
	l.snap = next
}

// Set stores a value under an explicit key, appending when the key is new.
func (l *List[T]) Set(key string, value T) {
	next := l.clone()
	if _, exists := next.items[key]; !exists {
		next.order = append(next.order, key)
	}
	next.items[key] = value
	l.snap = next
}

// Update applies fn to the entry under key. Returns false when key is absent.
func (l *List[T]) Update(key string, fn func(T) T) bool {
	current, ok := l.snap.items[key]
	if !ok {
		return false
	}
	next := l.clone()
	next.items[key] = fn(current)
	l.snap = next
	return true
}

// Rekey moves the entry under key to newKey, keeping its position. Returns
// false when key is absent or newKey is already taken.
func (l *List[T]) Rekey(key, newKey string, value T) bool {
	if key == newKey {
		l.Set(key, value)
		return true
	}
	if !l.Has(key) || l.Has(newKey) {
		return false
	}
	next := l.clone()
	for i, k := range next.order {
		if k == key {
			next.order[i] = newKey
			break
		}
	}
	delete(next.items, key)
	next.items[newKey] = value
	l.snap = next
	return true
}

// Delete removes one or more keys. Absent keys are ignored.
func (l *List[T]) Delete(keys ...string) {
	next := l.clone()
	for _, key := range keys {
		if _, ok := next.items[key]; !ok {
			continue
		}
		delete(next.items, key)
		for i, k := range next.order {
			if k == key {
				next.order = append(next.order[:i], next.order[i+1:]...)
				break
			}
		}
	}
	l.snap = next
}

// Replace swaps the whole contents for a new ordered slice.
func (l *List[T]) Replace(values ...T) {
	l.snap = &listSnapshot[T]{items: map[string]T{}}
	l.Add(values...)
}

// Clear removes all entries.
func (l *List[T]) Clear() {
	l.snap = &listSnapshot[T]{items: map[string]T{}}
}

// Filter returns a new store holding the entries that satisfy pred, in order.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	kept := make([]T, 0, len(l.snap.order))
	for _, k := range l.snap.order {
		if v := l.snap.items[k]; pred(v) {
			kept = append(kept, v)
		}
	}
	return NewList(l.keyOf, kept...)
}

// Map returns a new store with fn applied to every value, preserving order.
func (l *List[T]) Map(fn func(T) T) *List[T] {
	mapped := make([]T, 0, len(l.snap.order))
	for _, k := range l.snap.order {
		mapped = append(mapped, fn(l.snap.items[k]))
	}
	return NewList(l.keyOf, mapped...)
}

// Reduce folds the entries of a list store in order.
func Reduce[T, R any](l *List[T], init R, fn func(R, T) R) R {
	acc := init
	for _, v := range l.Values() {
		acc = fn(acc, v)
	}
	return acc
}
