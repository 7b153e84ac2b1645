package bookingcode

import (
	"strings"
	"testing"
)

func TestNewShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := New()
		if len(code) != Length {
			t.Fatalf("code %q has length %d, want %d", code, len(code), Length)
		}
		for _, r := range code {
			if !strings.ContainsRune("0123456789ABCDEF", r) {
				t.Fatalf("code %q contains non-hex rune %q", code, r)
			}
		}
	}
}

func TestNewVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[New()] = true
	}
	// Collisions are possible but 50 identical draws are not.
	if len(seen) < 2 {
		t.Fatal("generator returned a constant code")
	}
}
