// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"strings"
	"sync"
	"testing"

	"golang.org/x/tools/go/packages"
)

var (
	inputPkg     *packages.Package
	inputPkgErr  error
	inputPkgOnce sync.Once
)

func loadInput(t *testing.T) *packages.Package {
	t.Helper()
	inputPkgOnce.Do(func() {
		cfg := &packages.Config{
			Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedSyntax,
		}
		pkgs, err := packages.Load(cfg, "github.com/visvasity/dyngen/input")
		if err != nil {
			inputPkgErr = err
			return
		}
		inputPkg = pkgs[0]
	})
	if inputPkgErr != nil {
		t.Fatal(inputPkgErr)
	}
	return inputPkg
}

func TestCheckSpam(t *testing.T) {
	checker := New(loadInput(t))
	tdata, err := checker.Check("Spam", []string{"Counter"})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(tdata.Methods); n != 2 {
		t.Fatalf("wanted 2 methods, got %d", n)
	}
	if tdata.Inline() {
		t.Fatalf("two-method trait must not use the inline form")
	}

	ham := tdata.Methods[0]
	if ham.Name != "Ham" || !ham.Mut {
		t.Fatalf("wanted slot 0 to be mutating Ham, got %q mut=%v", ham.Name, ham.Mut)
	}
	eggs := tdata.Methods[1]
	if eggs.Name != "Eggs" || eggs.Mut {
		t.Fatalf("wanted slot 1 to be non-mutating Eggs, got %q mut=%v", eggs.Name, eggs.Mut)
	}
	if !eggs.HasDefault || eggs.DefaultName != "SpamDefaultEggs" {
		t.Fatalf("wanted Eggs default SpamDefaultEggs, got %q", eggs.DefaultName)
	}

	impl := tdata.Impls[0]
	if impl.Methods[0].UseDefault {
		t.Fatalf("Counter provides Ham; slot must not use the default")
	}
	if !impl.Methods[1].UseDefault {
		t.Fatalf("Counter omits Eggs; slot must use the default")
	}
}

func TestCheckWaggerInline(t *testing.T) {
	checker := New(loadInput(t))
	tdata, err := checker.Check("Wagger", []string{"Pupper", "Woofer"})
	if err != nil {
		t.Fatal(err)
	}
	if !tdata.Inline() {
		t.Fatalf("single-method trait must use the inline form")
	}
	if tdata.HasMut() || tdata.HasDefault() {
		t.Fatalf("Wagger has no mut or default methods")
	}
	if n := len(tdata.Impls); n != 2 {
		t.Fatalf("wanted 2 impls, got %d", n)
	}
}

func TestCheckShapeSlotOrder(t *testing.T) {
	checker := New(loadInput(t))
	tdata, err := checker.Check("Shape", []string{"Circle", "Square"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Name", "Area", "Describe"}
	for i, name := range want {
		if got := tdata.Methods[i].Name; got != name {
			t.Errorf("slot %d: got %q, want %q", i, got, name)
		}
	}
	// Circle relies on the Describe default; Square overrides it.
	if !tdata.Impls[0].Methods[2].UseDefault {
		t.Errorf("Circle must use the Describe default")
	}
	if tdata.Impls[1].Methods[2].UseDefault {
		t.Errorf("Square overrides Describe; slot must not use the default")
	}
}

func TestCheckCell(t *testing.T) {
	checker := New(loadInput(t))
	tdata, err := checker.Check("Cell", []string{"Register"})
	if err != nil {
		t.Fatal(err)
	}

	// Declaration order, not name order, is the slot order.
	want := []string{"Get", "Set", "Add"}
	for i, name := range want {
		if got := tdata.Methods[i].Name; got != name {
			t.Errorf("slot %d: got %q, want %q", i, got, name)
		}
	}
	if tdata.Methods[0].Mut || !tdata.Methods[1].Mut || !tdata.Methods[2].Mut {
		t.Errorf("wanted mut flags [false true true], got [%v %v %v]",
			tdata.Methods[0].Mut, tdata.Methods[1].Mut, tdata.Methods[2].Mut)
	}

	// Add is mutating, so its default body may take the full contract.
	add := tdata.Methods[2]
	if !add.HasDefault || add.DefaultName != "CellDefaultAdd" {
		t.Fatalf("wanted Add default CellDefaultAdd, got %q", add.DefaultName)
	}
	if !tdata.Impls[0].Methods[2].UseDefault {
		t.Errorf("Register omits Add; slot must use the default")
	}
}

func TestCheckRejections(t *testing.T) {
	tests := []struct {
		name  string
		trait string
		impls []string
		want  string
	}{
		{"unknown trait", "NoSuchTrait", nil, "doesn't exist"},
		{"not an interface", "Counter", nil, "not an interface"},
		{"unknown impl", "Spam", []string{"NoSuchType"}, "doesn't exist"},
		{"interface impl", "Spam", []string{"Wagger"}, "wanted a concrete type"},
		{"missing method without default", "Spam", []string{"Level"}, "no method"},
		{"mutable contract in non-mut default", "Faucet", nil, "must not receive mutating method"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := New(loadInput(t))
			_, err := checker.Check(tt.trait, tt.impls)
			if err == nil {
				t.Fatalf("wanted an error containing %q, got nil", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("wanted an error containing %q, got %q", tt.want, err)
			}
		})
	}
}
