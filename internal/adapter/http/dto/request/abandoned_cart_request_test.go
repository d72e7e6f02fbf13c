package request

import (
	"errors"
	"testing"
)

func TestAbandonedCartUpsertRequest_ResolvePhone(t *testing.T) {
	r := AbandonedCartUpsertRequest{Phone: " (11) 98765-4321 "}
	if got := r.ResolvePhone(); got != "(11) 98765-4321" {
		t.Fatalf("expected trimmed phone, got %q", got)
	}

	r2 := AbandonedCartUpsertRequest{Phone: "   "}
	if got := r2.ResolvePhone(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestAbandonedCartUpsertRequest_ResolveTotal(t *testing.T) {
	r := AbandonedCartUpsertRequest{
		Items: []CartItemRequest{
			{Price: 10, Quantity: 2},
			{Price: 5, Quantity: 1},
			{Price: -1, Quantity: 3},
			{Price: 4, Quantity: 0},
		},
	}
	total, err := r.ResolveTotal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 25 {
		t.Fatalf("expected 25, got %v", total)
	}

	r2 := AbandonedCartUpsertRequest{Total: 99.9}
	total, err = r2.ResolveTotal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 99.9 {
		t.Fatalf("expected caller total fallback, got %v", total)
	}

	r3 := AbandonedCartUpsertRequest{}
	_, err = r3.ResolveTotal()
	if !errors.Is(err, ErrInvalidCartItems) {
		t.Fatalf("expected ErrInvalidCartItems, got %v", err)
	}
}

func TestAbandonedCartUpsertRequest_ToEntity(t *testing.T) {
	r := AbandonedCartUpsertRequest{
		CustomerName: " Maria ",
		Phone:        " 11 98765-4321 ",
		Email:        " maria@x.com ",
		Items: []CartItemRequest{
			{ProductID: "p-1", ProductName: "caneca", Price: 10, Quantity: 2},
		},
	}
	cart := r.ToEntity()
	if cart.CustomerName != "Maria" || cart.Email != "maria@x.com" {
		t.Fatalf("expected trimmed fields, got %+v", cart)
	}
	if cart.Total != 20 {
		t.Fatalf("expected total 20, got %v", cart.Total)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductName != "caneca" {
		t.Fatalf("unexpected items: %+v", cart.Items)
	}
}
