package catalog

import (
	"testing"

	"github.com/hammamikhairi/simmer/internal/domain"
)

func TestDefaultsAreValid(t *testing.T) {
	for _, spec := range Defaults() {
		if err := spec.Validate(); err != nil {
			t.Errorf("preset %q: %v", spec.Name, err)
		}
	}
}

func TestDefaultsFitTheBoard(t *testing.T) {
	n := len(Defaults())
	if n == 0 {
		t.Fatal("catalog is empty")
	}
	if n > domain.MaxPrograms {
		t.Fatalf("catalog has %d presets, board holds %d", n, domain.MaxPrograms)
	}
}

func TestDefaultNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range Defaults() {
		if seen[spec.Name] {
			t.Fatalf("duplicate preset name %q", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestDefaultsReturnFreshSlices(t *testing.T) {
	a := Defaults()
	a[0].Name = "Mutated"
	a[0].Phases[0].DurationSeconds = 1

	b := Defaults()
	if b[0].Name == "Mutated" {
		t.Fatal("caller mutation leaked into the catalog")
	}
	if b[0].Phases[0].DurationSeconds == 1 {
		t.Fatal("caller phase mutation leaked into the catalog")
	}
}
