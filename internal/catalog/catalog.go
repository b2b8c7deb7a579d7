package catalog

import "context"

// Book is a catalog entry as served to authenticated clients.
type Book struct {
	Title        string `json:"title"`
	Subject      string `json:"subject"`
	Description  string `json:"description"`
	Availability string `json:"availability"`
}

// Catalog is the boundary to the book catalog. The real catalog lives
// in a hosted document database owned by another service; this
// interface keeps it substitutable without touching handlers.
type Catalog interface {
	List(ctx context.Context) ([]Book, error)
	Search(ctx context.Context, query string) ([]Book, error)
}
