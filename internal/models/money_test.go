package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Money
	}{
		{"whole amount", 5000, 500000},
		{"two decimals", 12.34, 1234},
		{"rounds half up", 12.345, 1235},
		{"rounds down", 12.344, 1234},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoneyFromFloat(tt.in); got != tt.want {
				t.Errorf("MoneyFromFloat(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoneySub_ClampsAtZero(t *testing.T) {
	if got := Money(1000).Sub(3000); got != 0 {
		t.Errorf("Sub past zero = %d, want 0", got)
	}
	if got := Money(3000).Sub(1000); got != 2000 {
		t.Errorf("Sub = %d, want 2000", got)
	}
}

func TestMoneyJSON(t *testing.T) {
	type payload struct {
		Amount Money `json:"amount"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"amount": 5000.50}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Amount != 500050 {
		t.Fatalf("Amount = %d, want 500050", p.Amount)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"amount":5000.5}` {
		t.Errorf("marshal = %s, want {\"amount\":5000.5}", out)
	}
}

func TestMoneyJSON_Invalid(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"abc"`), &m); err == nil {
		t.Error("expected error for non-numeric money value")
	}
}
