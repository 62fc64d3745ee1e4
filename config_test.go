// Copyright (c) 2025 Visvasity LLC

package main

import (
	"slices"
	"testing"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
inpkg: ./input
outdir: ./output

traits:
  - name: Spam
    impls: [Counter]
  - name: Wagger
    impls: [Pupper, Woofer]
`)
	cfg, err := ParseConfig(data, "test.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InPkg != "./input" {
		t.Fatalf("wanted inpkg ./input, got %q", cfg.InPkg)
	}
	if cfg.OutPkg != "output" {
		t.Fatalf("wanted outpkg defaulted to output, got %q", cfg.OutPkg)
	}
	if len(cfg.Traits) != 2 {
		t.Fatalf("wanted 2 traits, got %d", len(cfg.Traits))
	}
	if !slices.Equal(cfg.Traits[1].Impls, []string{"Pupper", "Woofer"}) {
		t.Fatalf("wanted [Pupper Woofer], got %v", cfg.Traits[1].Impls)
	}
}

func TestParseConfigRejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no-traits", "inpkg: ./input\noutdir: ./output\n"},
		{"unnamed-trait", "outdir: ./output\ntraits:\n  - impls: [Counter]\n"},
		{"no-impls", "outdir: ./output\ntraits:\n  - name: Spam\n"},
		{"bad-yaml", "traits: ["},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tc.data), "test.yaml"); err == nil {
				t.Fatalf("wanted an error for %s", tc.name)
			}
		})
	}
}

func TestParseTraitArg(t *testing.T) {
	ts, err := parseTraitArg("Shape=Circle,Square")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Name != "Shape" {
		t.Fatalf("wanted Shape, got %q", ts.Name)
	}
	if !slices.Equal(ts.Impls, []string{"Circle", "Square"}) {
		t.Fatalf("wanted [Circle Square], got %v", ts.Impls)
	}

	for _, arg := range []string{"Shape", "=Circle", "Shape=", "Shape=,"} {
		if _, err := parseTraitArg(arg); err == nil {
			t.Fatalf("wanted an error for %q", arg)
		}
	}
}
