package service

import (
	"testing"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/models"
)

func TestPctChange(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{"doubled", 100, 50, 100},
		{"both zero", 0, 0, 0},
		{"from zero", 50, 0, 100},
		{"halved", 50, 100, -50},
		{"unchanged", 75, 75, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pctChange(tt.current, tt.previous); got != tt.want {
				t.Errorf("pctChange(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestTrailingMonths(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	months := trailingMonths(now, 6)

	want := []models.MonthlyTotal{
		{Year: 2023, Month: 9},
		{Year: 2023, Month: 10},
		{Year: 2023, Month: 11},
		{Year: 2023, Month: 12},
		{Year: 2024, Month: 1},
		{Year: 2024, Month: 2},
	}
	if len(months) != len(want) {
		t.Fatalf("got %d months, want %d", len(months), len(want))
	}
	for i := range want {
		if months[i].Year != want[i].Year || months[i].Month != want[i].Month {
			t.Errorf("months[%d] = %d-%02d, want %d-%02d",
				i, months[i].Year, months[i].Month, want[i].Year, want[i].Month)
		}
	}
}
