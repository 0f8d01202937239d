// Package retriever implements the retrieval layer of the server: a
// text-to-Cypher retriever, a vector retriever, a small RAG pipeline,
// and the normalization of their heterogeneous raw outputs into one
// canonical result shape.
package retriever

// Result is the canonical triple every raw retriever output is reduced
// to. The three fields are independent:
//
//   - QueryText: the generated query text, if one could be recovered.
//     The empty string means "no query text found".
//   - Rows: an ordered sequence of materialized records, or nil when the
//     raw output carried none. Elements are usually map[string]any but
//     may stay unconverted when a best-effort conversion fails.
//   - Metadata: auxiliary fields not claimed by the first two. Always
//     non-nil, possibly empty.
//
// A Result is built fresh per Normalize call and never mutated afterwards.
type Result struct {
	QueryText string
	Rows      []any
	Metadata  map[string]any
}

// QueryTextWithFallback returns QueryText, consulting the metadata
// entries "cypher" and then "cypher_text" when the primary text is
// empty. Retriever versions that report the generated query only inside
// their metadata block are recovered this way.
func (r Result) QueryTextWithFallback() string {
	if r.QueryText != "" {
		return r.QueryText
	}
	for _, key := range []string{"cypher", "cypher_text"} {
		if s, ok := r.Metadata[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// RowConverter is the accessor a raw row element may expose to
// materialize itself into a key/value record.
type RowConverter interface {
	Data() map[string]any
}
