package textutil

import "testing"

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Moby Dick", "moby dick", true},
		{"DUNE", "dune", true},
		{"Straße", "STRASSE", true},
		{"", "", true},
		{"Dune", "Dune Messiah", false},
		{"Emma", "Emma ", false},
	}
	for _, tt := range tests {
		if got := EqualFold(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
