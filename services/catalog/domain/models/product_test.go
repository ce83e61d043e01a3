package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewProduct(t *testing.T) {
	before := time.Now().UTC()
	p := NewProduct(ProductName("Widget"), decimal.RequireFromString("9.99"))
	after := time.Now().UTC()

	if p.ID != 0 {
		t.Fatalf("expected unsaved product to have zero ID, got %d", p.ID)
	}
	if p.Name != "Widget" {
		t.Fatalf("unexpected name %q", p.Name)
	}
	if !p.Price.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("unexpected price %s", p.Price)
	}
	if p.CreatedAt.Before(before) || p.CreatedAt.After(after) {
		t.Fatalf("CreatedAt %v not between %v and %v", p.CreatedAt, before, after)
	}
	if !p.UpdatedAt.Equal(p.CreatedAt) {
		t.Fatalf("expected UpdatedAt == CreatedAt on creation")
	}
}

func TestProduct_Revise(t *testing.T) {
	p := NewProduct(ProductName("Widget"), decimal.RequireFromString("9.99"))
	created := p.CreatedAt

	p.Revise(ProductName("Widget Pro"), decimal.RequireFromString("12.50"))

	if p.Name != "Widget Pro" || !p.Price.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("revise did not apply: %+v", p)
	}
	if !p.CreatedAt.Equal(created) {
		t.Fatal("CreatedAt must not change on revise")
	}
	if p.UpdatedAt.Before(created) {
		t.Fatal("UpdatedAt must not move backwards")
	}
}
