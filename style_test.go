package img2sketch

import (
	"errors"
	"strings"
	"testing"
)

func TestStyleTable(t *testing.T) {
	tests := []struct {
		style    Style
		name     string
		sigma    float64
		strength int
	}{
		{Detailed, "Detailed", 5, 5},
		{Medium, "Medium", 12, 5},
		{Light, "Light", 20, 4},
		{Bold, "Bold", 10, 7},
		{Minimalist, "Minimalist", 25, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.style.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.style.String(), tt.name)
			}
			if tt.style.Sigma() != tt.sigma {
				t.Errorf("Sigma() = %v, want %v", tt.style.Sigma(), tt.sigma)
			}
			if tt.style.SharpenStrength() != tt.strength {
				t.Errorf("SharpenStrength() = %d, want %d", tt.style.SharpenStrength(), tt.strength)
			}
			if tt.style.Summary() == "" {
				t.Error("Summary() is empty")
			}
		})
	}
}

func TestStylesOrder(t *testing.T) {
	want := []Style{Detailed, Medium, Light, Bold, Minimalist}
	got := Styles()
	if len(got) != len(want) {
		t.Fatalf("Styles() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Styles()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range Styles() {
		for _, name := range []string{s.String(), strings.ToLower(s.String()), strings.ToUpper(s.String())} {
			got, err := ParseStyle(name)
			if err != nil {
				t.Errorf("ParseStyle(%q) failed: %v", name, err)
				continue
			}
			if got != s {
				t.Errorf("ParseStyle(%q) = %v, want %v", name, got, s)
			}
		}
	}

	if got, err := ParseStyle(" bold "); err != nil || got != Bold {
		t.Errorf("ParseStyle(\" bold \") = %v, %v", got, err)
	}

	for _, name := range []string{"", "sketchy", "med"} {
		if _, err := ParseStyle(name); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseStyle(%q) error = %v, want ErrInvalidParameter", name, err)
		}
	}
}

func TestInvalidStyle(t *testing.T) {
	s := Style(-1)
	if s.Valid() {
		t.Error("Style(-1).Valid() = true")
	}
	if s.String() != "Style(-1)" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Sigma() != 0 || s.SharpenStrength() != 0 || s.Summary() != "" {
		t.Error("invalid style returned non-zero parameters")
	}
}

func TestStyleNames(t *testing.T) {
	want := "detailed,medium,light,bold,minimalist"
	if got := strings.Join(StyleNames(), ","); got != want {
		t.Errorf("StyleNames() = %s, want %s", got, want)
	}
}
