package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "A", PriceEGP: 85000, PiecesCount: 5, Images: []string{"a"}},
		{ID: "2", Name: "B", PriceEGP: 62000, PiecesCount: 6, Images: []string{"b"}},
	}
}

func TestMemoryList(t *testing.T) {
	repo := NewMemory(testProducts())
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestMemoryListReturnsCopy(t *testing.T) {
	repo := NewMemory(testProducts())
	first, _ := repo.List(context.Background())
	first[0].Name = "mutated"
	second, _ := repo.List(context.Background())
	if second[0].Name == "mutated" {
		t.Fatal("List must not expose internal storage")
	}
}

func TestMemoryGetByID(t *testing.T) {
	repo := NewMemory(testProducts())
	p, err := repo.GetByID(context.Background(), "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PriceEGP != 62000 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestMemoryGetByIDNotFound(t *testing.T) {
	repo := NewMemory(testProducts())
	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
