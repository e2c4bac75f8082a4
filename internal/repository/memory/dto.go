package memory

import (
	domdoc "github.com/otissv/fieldkit/internal/domain/document"
	"github.com/otissv/fieldkit/pkg/store"
)

// Row metadata keys. Field values live under "values" so column ids can
// never collide with bookkeeping fields.
const (
	rowCreatedAt = "createdAt"
	rowRevision  = "revision"
	rowValues    = "values"
)

func docToRecord(doc domdoc.Document) store.Record {
	return store.Record{
		rowCreatedAt: doc.CreatedAt(),
		rowRevision:  doc.Revision(),
		rowValues:    doc.Values(),
	}
}

func recordToDoc(id string, row store.Record) domdoc.Document {
	createdAt, _ := row[rowCreatedAt].(int64)
	revision, _ := row[rowRevision].(int)
	values, _ := row[rowValues].(map[string]any)
	return domdoc.Reconstruct(id, values, createdAt, revision)
}
