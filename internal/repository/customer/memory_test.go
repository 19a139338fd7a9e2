package customer

import (
	"context"
	"testing"

	"restoration-financials/internal/domain"
)

func TestMemory_GetByID(t *testing.T) {
	repo := NewMemory([]domain.Customer{
		{ID: "customer-1", Name: "Riverside Mall"},
		{ID: "customer-2", Name: "Jones Estate"},
		{ID: "customer-1", Name: "Duplicate"},
	}, nil)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "customer-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Riverside Mall" {
		t.Fatalf("expected first entry to win, got %+v", got)
	}

	if _, err := repo.GetByID(ctx, "customer-9"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_ListReturnsCopy(t *testing.T) {
	repo := NewMemory([]domain.Customer{{ID: "customer-1", Name: "A"}}, nil)
	ctx := context.Background()

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	list[0].Name = "mutated"

	again, _ := repo.List(ctx)
	if again[0].Name != "A" {
		t.Fatalf("expected repository data to be unchanged, got %q", again[0].Name)
	}
}
