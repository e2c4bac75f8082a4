package store

// Record is a loosely typed row keyed by column id.
type Record = map[string]any

type tableSnapshot struct {
	order []string
	rows  map[string]Record
}

// Table is an ordered store of Records keyed by id. Rows are copied on the
// way in and out, so a Record obtained from the store can be mutated freely
// without affecting subsequent reads.
type Table struct {
	snap *tableSnapshot
}

// NewTable creates an empty table store.
func NewTable() *Table {
	return &Table{snap: &tableSnapshot{rows: map[string]Record{}}}
}

func cloneRecord(r Record) Record {
	if r == nil {
		return Record{}
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

func (t *Table) clone() *tableSnapshot {
	next := &tableSnapshot{
		order: make([]string, len(t.snap.order)),
		rows:  make(map[string]Record, len(t.snap.rows)),
	}
	copy(next.order, t.snap.order)
	for id, row := range t.snap.rows {
		next.rows[id] = row
	}
	return next
}

// Get returns a copy of the row stored under id.
func (t *Table) Get(id string) (Record, bool) {
	row, ok := t.snap.rows[id]
	if !ok {
		return nil, false
	}
	return cloneRecord(row), true
}

// Has reports whether a row exists under id.
func (t *Table) Has(id string) bool {
	_, ok := t.snap.rows[id]
	return ok
}

// Size returns the number of rows.
func (t *Table) Size() int { return len(t.snap.order) }

// Keys returns the row ids in order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.snap.order))
	copy(keys, t.snap.order)
	return keys
}

// Values returns copies of the rows in order.
func (t *Table) Values() []Record {
	rows := make([]Record, 0, len(t.snap.order))
	for _, id := range t.snap.order {
		rows = append(rows, cloneRecord(t.snap.rows[id]))
	}
	return rows
}

// Entries returns id-row pairs in order, with copied rows.
func (t *Table) Entries() []Entry[Record] {
	entries := make([]Entry[Record], 0, len(t.snap.order))
	for _, id := range t.snap.order {
		entries = append(entries, Entry[Record]{Key: id, Value: cloneRecord(t.snap.rows[id])})
	}
	return entries
}

// Data returns the table as an id-keyed map of copied rows.
func (t *Table) Data() map[string]Record {
	data := make(map[string]Record, len(t.snap.rows))
	for id, row := range t.snap.rows {
		data[id] = cloneRecord(row)
	}
	return data
}

// Set stores a copy of row under id, appending when id is new.
func (t *Table) Set(id string, row Record) {
	next := t.clone()
	if _, exists := next.rows[id]; !exists {
		next.order = append(next.order, id)
	}
	next.rows[id] = cloneRecord(row)
	t.snap = next
}

// Update shallow-merges partial onto the row under id: keys present in
// partial overwrite, all other keys survive. An empty partial leaves the row
// identical. Returns false when id is absent.
func (t *Table) Update(id string, partial Record) bool {
	current, ok := t.snap.rows[id]
	if !ok {
		return false
	}
	merged := cloneRecord(current)
	for k, v := range partial {
		merged[k] = v
	}
	next := t.clone()
	next.rows[id] = merged
	t.snap = next
	return true
}

// Delete removes one or more rows. Absent ids are ignored.
func (t *Table) Delete(ids ...string) {
	next := t.clone()
	for _, id := range ids {
		if _, ok := next.rows[id]; !ok {
			continue
		}
		delete(next.rows, id)
		for i, k := range next.order {
			if k == id {
				next.order = append(next.order[:i], next.order[i+1:]...)
				break
			}
		}
	}
	t.snap = next
}

// Replace swaps the whole contents for the given ordered entries.
func (t *Table) Replace(entries ...Entry[Record]) {
	next := &tableSnapshot{rows: make(map[string]Record, len(entries))}
	for _, e := range entries {
		if _, exists := next.rows[e.Key]; !exists {
			next.order = append(next.order, e.Key)
		}
		next.rows[e.Key] = cloneRecord(e.Value)
	}
	t.snap = next
}

// Clear removes all rows.
func (t *Table) Clear() {
	t.snap = &tableSnapshot{rows: map[string]Record{}}
}

// Filter returns a new table holding the rows that satisfy pred, in order.
func (t *Table) Filter(pred func(id string, row Record) bool) *Table {
	out := NewTable()
	for _, id := range t.snap.order {
		if row := t.snap.rows[id]; pred(id, row) {
			out.Set(id, row)
		}
	}
	return out
}

// Map returns a new table with fn applied to a copy of every row.
func (t *Table) Map(fn func(id string, row Record) Record) *Table {
	out := NewTable()
	for _, id := range t.snap.order {
		out.Set(id, fn(id, cloneRecord(t.snap.rows[id])))
	}
	return out
}

// ReduceTable folds the rows of a table in order.
func ReduceTable[R any](t *Table, init R, fn func(R, string, Record) R) R {
	acc := init
	for _, e := range t.Entries() {
		acc = fn(acc, e.Key, e.Value)
	}
	return acc
}
