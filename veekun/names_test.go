package veekun

import "testing"

func TestPascalName(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"master-ball", "MasterBall"},
		{"potion", "Potion"},
		{"king-s-rock", "KingSRock"},
		{"x-attack", "XAttack"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PascalName(tt.identifier); got != tt.want {
			t.Errorf("PascalName(%q) = %q, want %q", tt.identifier, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"master-ball", "Master Ball"},
		{"potion", "Potion"},
		{"never-melt-ice", "Never Melt Ice"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.identifier); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.identifier, got, tt.want)
		}
	}
}
