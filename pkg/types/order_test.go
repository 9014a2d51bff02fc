package types

import "testing"

func TestTerminalOrderStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{OrderStatusPending, false},
		{OrderStatusCompleted, true},
		{OrderStatusCancelled, true},
		{"shipped", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := TerminalOrderStatus(tt.status); got != tt.want {
				t.Fatalf("TerminalOrderStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestOrderItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    OrderItem
		wantErr bool
	}{
		{"valid", OrderItem{Quantity: 1, UnitPrice: 0}, false},
		{"zero quantity", OrderItem{Quantity: 0, UnitPrice: 1}, true},
		{"negative quantity", OrderItem{Quantity: -2, UnitPrice: 1}, true},
		{"negative price", OrderItem{Quantity: 1, UnitPrice: -0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
		})
	}
}

func TestPaymentValidate(t *testing.T) {
	if err := (Payment{Amount: 10, Method: "cash"}).Validate(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := (Payment{Amount: -1, Method: "cash"}).Validate(); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if err := (Payment{Amount: 10}).Validate(); err == nil {
		t.Fatal("expected error for missing method")
	}
}
