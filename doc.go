// Package fieldkit provides an embeddable schema-driven content store with
// typed, validated fields. Collections are defined as ordered columns, each
// bound to one of thirteen field kinds (text, number, email, tags, ...), and
// every write is validated against the column's rules before it lands.
//
// # Embedded client
//
//	client, _ := fieldkit.New()
//	client.Collections().Create(ctx, "articles",
//	    fieldkit.ColumnSpec{Name: "title", Type: field.Title},
//	    fieldkit.ColumnSpec{Name: "published", Type: field.DateTime},
//	)
//	docs := client.Documents("articles")
//	doc, _ := docs.Insert(ctx)
//	_, err := docs.Update(ctx, doc.ID, titleID, "Hello world")
//
// Validation failures carry per-field messages:
//
//	var fieldErrs *field.FieldErrors
//	if errors.As(err, &fieldErrs) {
//	    msg, _ := fieldErrs.Get(titleID)
//	}
//
// The same services back the HTTP API under cmd/fieldkit; the client is for
// tools and tests that want the store in-process.
package fieldkit
