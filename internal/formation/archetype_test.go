package formation

import (
	"strings"
	"testing"
)

func TestNewCatalogValid(t *testing.T) {
	c, err := NewCatalog([]*Archetype{minimalArchetype("spire"), minimalArchetype("reef")})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if c.TotalWeight() != 2 {
		t.Errorf("TotalWeight = %d, want 2", c.TotalWeight())
	}
	if c.ByID("spire") == nil {
		t.Error("ByID(spire) = nil")
	}
	if c.ByID("kraken") != nil {
		t.Error("ByID(kraken) should be nil")
	}
}

func TestNewCatalogRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Archetype)
		list    func() []*Archetype
		wantErr string
	}{
		{
			name:    "empty catalog",
			list:    func() []*Archetype { return nil },
			wantErr: "empty",
		},
		{
			name:    "zero weight",
			mutate:  func(a *Archetype) { a.Weight = 0 },
			wantErr: "weight",
		},
		{
			name:    "negative weight",
			mutate:  func(a *Archetype) { a.Weight = -3 },
			wantErr: "weight",
		},
		{
			name:    "empty id",
			mutate:  func(a *Archetype) { a.ID = "" },
			wantErr: "empty id",
		},
		{
			name: "duplicate id",
			list: func() []*Archetype {
				return []*Archetype{minimalArchetype("x"), minimalArchetype("x")}
			},
			wantErr: "duplicate",
		},
		{
			name:    "emerge_end out of range",
			mutate:  func(a *Archetype) { a.Curve.EmergeEnd = 1.5 },
			wantErr: "emerge_end",
		},
		{
			name:    "dissolve before emerge",
			mutate:  func(a *Archetype) { a.Curve.DissolveStart = 0.2 },
			wantErr: "dissolve_start",
		},
		{
			name:    "zero rise exponent",
			mutate:  func(a *Archetype) { a.Curve.RiseExponent = 0 },
			wantErr: "exponents",
		},
		{
			name:    "inverted lifespan range",
			mutate:  func(a *Archetype) { a.LifespanMin, a.LifespanMax = 20, 10 },
			wantErr: "lifespan",
		},
		{
			name:    "zero scale",
			mutate:  func(a *Archetype) { a.ScaleMin, a.ScaleMax = 0, 0 },
			wantErr: "scale",
		},
		{
			name:    "zero parts",
			mutate:  func(a *Archetype) { a.PartsMin = 0 },
			wantErr: "parts",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list []*Archetype
			if tt.list != nil {
				list = tt.list()
			} else {
				a := minimalArchetype("x")
				tt.mutate(a)
				list = []*Archetype{a}
			}
			_, err := NewCatalog(list)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
