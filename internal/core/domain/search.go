package domain

// SearchResult is a single ranked hit from a similarity query.
//
// DocumentID is a weak reference: the result is a denormalised snapshot
// taken at query time and survives independently of the referenced
// document's later deletion.
type SearchResult struct {
	// DocumentID references the matched Document.
	DocumentID string

	// Title is the document title at query time.
	Title string

	// Content is the document content at query time.
	Content string

	// Score is the relevance score. Higher means more relevant; results
	// of one search are ordered by descending score, ties broken by
	// store insertion order.
	Score float64

	// Highlights contains snippets with matched terms. Empty when not
	// computed (e.g. vector-only queries).
	Highlights []string
}
