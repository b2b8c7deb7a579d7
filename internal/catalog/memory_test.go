package catalog

import (
	"context"
	"testing"
)

func TestListReturnsFullShelf(t *testing.T) {
	c := NewMemoryCatalog()

	books, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(books) == 0 {
		t.Fatal("empty shelf")
	}
	for _, b := range books {
		if b.Title == "" || b.Subject == "" {
			t.Errorf("incomplete book entry: %+v", b)
		}
	}
}

func TestSearchMatchesTitleAndSubject(t *testing.T) {
	c := NewMemoryCatalog()
	ctx := context.Background()

	books, err := c.Search(ctx, "mathematics")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(books) < 2 {
		t.Errorf("Search(mathematics) = %d results, want at least 2", len(books))
	}

	books, err = c.Search(ctx, "no such book anywhere")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("Search(nonsense) = %d results, want 0", len(books))
	}

	// empty query falls back to the full shelf
	all, _ := c.List(ctx)
	books, err = c.Search(ctx, "  ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(books) != len(all) {
		t.Errorf("Search(blank) = %d results, want %d", len(books), len(all))
	}
}
