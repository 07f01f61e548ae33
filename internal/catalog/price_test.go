package catalog

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  float64
	}{
		{"rupees per kg", "₹120/kg", 120},
		{"plain integer", "50", 50},
		{"decimal", "49.5", 49.5},
		{"embedded decimal", "Rs 12.75 per bundle", 12.75},
		{"first of several numbers", "2 for ₹30", 2},
		{"no number", "free", 0},
		{"empty", "", 0},
		{"symbols only", "₹/kg", 0},
		{"leading zeroes", "007", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePrice(tt.price); got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}
