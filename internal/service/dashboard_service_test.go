package service

import (
	"testing"
)

func TestTrendDelta(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"growth from zero", 50, 0, 100},
		{"doubled", 200, 100, 100},
		{"halved", 50, 100, -50},
		{"unchanged", 100, 100, 0},
		{"rounds to one decimal", 1, 3, -66.7},
		{"dropped to zero", 0, 100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrendDelta(tt.current, tt.previous); got != tt.want {
				t.Errorf("TrendDelta(%d, %d) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name      string
		succeeded int64
		total     int64
		want      float64
	}{
		{"no verifications", 0, 0, 0},
		{"all succeeded", 10, 10, 100},
		{"none succeeded", 0, 10, 0},
		{"rounds to one decimal", 2, 3, 66.7},
		{"three quarters", 3, 4, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuccessRate(tt.succeeded, tt.total); got != tt.want {
				t.Errorf("SuccessRate(%d, %d) = %v, want %v", tt.succeeded, tt.total, got, tt.want)
			}
		})
	}
}
