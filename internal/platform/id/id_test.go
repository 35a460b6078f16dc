package id_test

import (
	"testing"

	"github.com/scenebridge/scenebridge/internal/platform/id"
)

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		value, err := id.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if len(value) != 36 {
			t.Fatalf("expected canonical uuid length 36, got %d (%q)", len(value), value)
		}
		if seen[value] {
			t.Fatalf("duplicate id %q", value)
		}
		seen[value] = true
	}
}
