// Copyright (c) 2025 Visvasity LLC

// Package typecheck validates dyngen generator input: the trait
// interfaces, their optional default-method bodies, and the concrete
// types a dispatch table is requested for. All failures here are
// generation-time failures; nothing is deferred to runtime.
package typecheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// MutDirective marks a trait method as mutating when it appears as a
// directive comment on the method's declaration.
const MutDirective = "dyngen:mut"

// MethodData describes one trait method. Index is the slot position,
// which is the method's declaration order within the interface.
type MethodData struct {
	Index int
	Name  string

	// Mut is set for methods carrying the //dyngen:mut directive. Their
	// slots take a mutable erased receiver and are reachable only
	// through mutable handles.
	Mut bool

	// HasDefault is set when the input package declares a
	// <Trait>Default<Method> body for this method.
	HasDefault  bool
	DefaultName string

	Sig *types.Signature
}

// ImplMethodData records how one implementing type satisfies one slot.
type ImplMethodData struct {
	Name string

	// UseDefault is set when the type omits the method and the slot
	// must forward to the trait's default body.
	UseDefault bool
}

// ImplData describes one implementing type of a trait.
type ImplData struct {
	TypeName string
	PkgPath  string
	PkgName  string

	// Methods is parallel to TraitData.Methods.
	Methods []*ImplMethodData
}

// TraitData is the validated metadata the generator consumes.
type TraitData struct {
	TraitName string
	PkgPath   string
	PkgName   string

	Methods []*MethodData
	Impls   []*ImplData
}

// HasMut returns true if any method of the trait is mutating.
func (td *TraitData) HasMut() bool {
	for _, m := range td.Methods {
		if m.Mut {
			return true
		}
	}
	return false
}

// HasDefault returns true if any method of the trait has a default body.
func (td *TraitData) HasDefault() bool {
	for _, m := range td.Methods {
		if m.HasDefault {
			return true
		}
	}
	return false
}

// Inline reports whether handles of this trait store the method pointer
// inline instead of referencing a static table. Chosen purely by method
// count; the generated construct and deref operations are unaffected.
func (td *TraitData) Inline() bool {
	return len(td.Methods) == 1
}

type Checker struct {
	pkg *packages.Package

	traitDataMap map[string]*TraitData
}

func New(pkg *packages.Package) *Checker {
	return &Checker{
		pkg:          pkg,
		traitDataMap: make(map[string]*TraitData),
	}
}

func (c *Checker) TraitDataMap() map[string]*TraitData {
	return c.traitDataMap
}

// Check validates the named trait and its requested implementing types
// and records the resulting metadata.
func (c *Checker) Check(traitName string, implNames []string) (*TraitData, error) {
	tn, iface, err := c.lookupTrait(traitName)
	if err != nil {
		return nil, err
	}

	tdata := &TraitData{
		TraitName: tn.Name(),
		PkgPath:   tn.Pkg().Path(),
		PkgName:   tn.Pkg().Name(),
	}

	if err := c.collectMethods(tn, iface, tdata); err != nil {
		return nil, err
	}
	if err := c.collectDirectives(tn, tdata); err != nil {
		return nil, err
	}
	if err := c.collectDefaults(tn, tdata); err != nil {
		return nil, err
	}

	for _, name := range implNames {
		idata, err := c.checkImpl(tdata, name)
		if err != nil {
			return nil, err
		}
		tdata.Impls = append(tdata.Impls, idata)
	}

	Logger().Debug("checked trait",
		zap.String("trait", traitName),
		zap.Int("methods", len(tdata.Methods)),
		zap.Int("impls", len(tdata.Impls)),
		zap.Bool("inline", tdata.Inline()))

	c.traitDataMap[traitName] = tdata
	return tdata, nil
}

func (c *Checker) lookupTrait(traitName string) (*types.TypeName, *types.Interface, error) {
	scope := c.pkg.Types.Scope()
	object := scope.Lookup(traitName)
	if object == nil {
		return nil, nil, fmt.Errorf("trait %q doesn't exist in package %q", traitName, c.pkg.PkgPath)
	}
	tn, ok := object.(*types.TypeName)
	if !ok {
		return nil, nil, fmt.Errorf("trait %q is not a typename", traitName)
	}
	if !tn.Exported() {
		return nil, nil, fmt.Errorf("trait %q must be exported", traitName)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, nil, fmt.Errorf("trait %q is not a defined type", traitName)
	}
	if named.TypeParams() != nil {
		return nil, nil, fmt.Errorf("trait %q: generic traits are not supported", traitName)
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		return nil, nil, fmt.Errorf("trait %q is not an interface type", traitName)
	}
	if iface.NumEmbeddeds() != 0 {
		return nil, nil, fmt.Errorf("trait %q: embedded interfaces are not supported", traitName)
	}
	if iface.NumExplicitMethods() == 0 {
		return nil, nil, fmt.Errorf("trait %q has no methods", traitName)
	}
	return tn, iface, nil
}

// collectMethods gathers the trait's methods in declaration order, which
// is the slot order. go/types sorts explicit interface methods by name,
// so the order must come from the AST declaration.
func (c *Checker) collectMethods(tn *types.TypeName, iface *types.Interface, tdata *TraitData) error {
	itype := c.findInterfaceAST(tn.Name())
	if itype == nil {
		return fmt.Errorf("trait %q: declaration not found in package syntax", tn.Name())
	}
	for _, field := range itype.Methods.List {
		if len(field.Names) == 0 {
			// Embedded; already rejected by lookupTrait.
			continue
		}
		name := field.Names[0].Name
		m := explicitMethod(iface, name)
		if m == nil {
			return fmt.Errorf("trait %q: method %q not found in type information", tn.Name(), name)
		}
		if !m.Exported() {
			return fmt.Errorf("trait %q: unexported method %q is not supported", tn.Name(), name)
		}
		sig, ok := m.Type().(*types.Signature)
		if !ok {
			return fmt.Errorf("trait %q: method %q is not a function", tn.Name(), name)
		}
		tdata.Methods = append(tdata.Methods, &MethodData{
			Index: len(tdata.Methods),
			Name:  name,
			Sig:   sig,
		})
	}
	if len(tdata.Methods) != iface.NumExplicitMethods() {
		return fmt.Errorf("trait %q: found %d of %d methods in the declaration",
			tn.Name(), len(tdata.Methods), iface.NumExplicitMethods())
	}
	return nil
}

func explicitMethod(iface *types.Interface, name string) *types.Func {
	for i := 0; i < iface.NumExplicitMethods(); i++ {
		if m := iface.ExplicitMethod(i); m.Name() == name {
			return m
		}
	}
	return nil
}

// collectDirectives scans the trait's AST declaration for //dyngen:mut
// directive comments on method declarations.
func (c *Checker) collectDirectives(tn *types.TypeName, tdata *TraitData) error {
	itype := c.findInterfaceAST(tn.Name())
	if itype == nil {
		return fmt.Errorf("trait %q: declaration not found in package syntax", tn.Name())
	}
	for _, field := range itype.Methods.List {
		if len(field.Names) == 0 {
			continue
		}
		if !hasDirective(field.Doc, MutDirective) {
			continue
		}
		name := field.Names[0].Name
		mdata := tdata.method(name)
		if mdata == nil {
			return fmt.Errorf("trait %q: directive on unknown method %q", tn.Name(), name)
		}
		mdata.Mut = true
	}
	return nil
}

func (c *Checker) findInterfaceAST(traitName string) *ast.InterfaceType {
	for _, file := range c.pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Name != traitName {
					continue
				}
				if itype, ok := ts.Type.(*ast.InterfaceType); ok {
					return itype
				}
			}
		}
	}
	return nil
}

func hasDirective(doc *ast.CommentGroup, directive string) bool {
	if doc == nil {
		return false
	}
	for _, comment := range doc.List {
		if strings.TrimPrefix(comment.Text, "//") == directive {
			return true
		}
	}
	return false
}

// collectDefaults looks up <Trait>Default<Method> bodies and validates
// their signatures: the trait interface first, then the method's own
// parameters, with identical results.
func (c *Checker) collectDefaults(tn *types.TypeName, tdata *TraitData) error {
	scope := c.pkg.Types.Scope()
	for _, mdata := range tdata.Methods {
		name := tn.Name() + "Default" + mdata.Name
		object := scope.Lookup(name)
		if object == nil {
			continue
		}
		fn, ok := object.(*types.Func)
		if !ok {
			return fmt.Errorf("trait %q: default %q is not a function", tn.Name(), name)
		}
		sig := fn.Type().(*types.Signature)
		if err := checkDefaultSignature(tn, tdata, mdata, sig); err != nil {
			return fmt.Errorf("trait %q: default %q: %w", tn.Name(), name, err)
		}
		mdata.HasDefault = true
		mdata.DefaultName = name
	}
	return nil
}

func checkDefaultSignature(tn *types.TypeName, tdata *TraitData, mdata *MethodData, sig *types.Signature) error {
	params := sig.Params()
	want := mdata.Sig.Params()
	if params.Len() != want.Len()+1 {
		return fmt.Errorf("wanted %d parameters, got %d", want.Len()+1, params.Len())
	}

	// The first parameter is the view the dispatch shim rebuilds around
	// the erased self: an interface over the trait's own methods. The
	// shim for a non-mutating slot holds only a shared handle, so the
	// body of a non-mutating default must not be able to name any
	// mutating method.
	siface, ok := params.At(0).Type().Underlying().(*types.Interface)
	if !ok {
		return fmt.Errorf("first parameter must be an interface over the methods of %s", tn.Name())
	}
	for i := 0; i < siface.NumMethods(); i++ {
		m := siface.Method(i)
		tm := tdata.method(m.Name())
		if tm == nil {
			return fmt.Errorf("self method %q is not a method of %s", m.Name(), tn.Name())
		}
		if !types.Identical(m.Type(), tm.Sig) {
			return fmt.Errorf("self method %q differs from the trait declaration", m.Name())
		}
		if !mdata.Mut && tm.Mut {
			return fmt.Errorf("default for non-mutating %q must not receive mutating method %q",
				mdata.Name, m.Name())
		}
	}
	for i := 0; i < want.Len(); i++ {
		if !types.Identical(params.At(i+1).Type(), want.At(i).Type()) {
			return fmt.Errorf("parameter %d type mismatch with method %q", i+1, mdata.Name)
		}
	}
	if sig.Variadic() != mdata.Sig.Variadic() {
		return fmt.Errorf("variadic form differs from method %q", mdata.Name)
	}
	results, want := sig.Results(), mdata.Sig.Results()
	if results.Len() != want.Len() {
		return fmt.Errorf("wanted %d results, got %d", want.Len(), results.Len())
	}
	for i := 0; i < want.Len(); i++ {
		if !types.Identical(results.At(i).Type(), want.At(i).Type()) {
			return fmt.Errorf("result %d type mismatch with method %q", i, mdata.Name)
		}
	}
	return nil
}

// checkImpl validates one implementing type against the trait's slots.
func (c *Checker) checkImpl(tdata *TraitData, implName string) (*ImplData, error) {
	scope := c.pkg.Types.Scope()
	object := scope.Lookup(implName)
	if object == nil {
		return nil, fmt.Errorf("impl type %q doesn't exist in package %q", implName, c.pkg.PkgPath)
	}
	tn, ok := object.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("impl type %q is not a typename", implName)
	}
	if !tn.Exported() {
		return nil, fmt.Errorf("impl type %q must be exported", implName)
	}
	if _, ok := tn.Type().Underlying().(*types.Interface); ok {
		return nil, fmt.Errorf("impl type %q is an interface; wanted a concrete type", implName)
	}

	idata := &ImplData{
		TypeName: tn.Name(),
		PkgPath:  tn.Pkg().Path(),
		PkgName:  tn.Pkg().Name(),
	}

	ptrSet := types.NewMethodSet(types.NewPointer(tn.Type()))
	valSet := types.NewMethodSet(tn.Type())
	for _, mdata := range tdata.Methods {
		sel := lookupMethod(ptrSet, mdata.Name)
		if sel == nil {
			if !mdata.HasDefault {
				return nil, fmt.Errorf("impl type %q has no method %q and trait %q declares no default for it",
					implName, mdata.Name, tdata.TraitName)
			}
			idata.Methods = append(idata.Methods, &ImplMethodData{Name: mdata.Name, UseDefault: true})
			continue
		}
		if err := checkImplSignature(mdata, sel.Type().(*types.Signature)); err != nil {
			return nil, fmt.Errorf("impl type %q: method %q: %w", implName, mdata.Name, err)
		}
		if !mdata.Mut && lookupMethod(valSet, mdata.Name) == nil {
			// A pointer receiver can mutate the erased value through a
			// shared handle; only mutating slots may have one.
			return nil, fmt.Errorf("impl type %q: method %q needs a value receiver; only //%s methods may use a pointer receiver",
				implName, mdata.Name, MutDirective)
		}
		idata.Methods = append(idata.Methods, &ImplMethodData{Name: mdata.Name})
	}
	return idata, nil
}

func lookupMethod(mset *types.MethodSet, name string) *types.Selection {
	for i := 0; i < mset.Len(); i++ {
		sel := mset.At(i)
		if sel.Obj().Name() == name {
			return sel
		}
	}
	return nil
}

func checkImplSignature(mdata *MethodData, sig *types.Signature) error {
	params, wantParams := sig.Params(), mdata.Sig.Params()
	if params.Len() != wantParams.Len() {
		return fmt.Errorf("wanted %d parameters, got %d", wantParams.Len(), params.Len())
	}
	for i := 0; i < wantParams.Len(); i++ {
		if !types.Identical(params.At(i).Type(), wantParams.At(i).Type()) {
			return fmt.Errorf("parameter %d type mismatch with trait declaration", i)
		}
	}
	if sig.Variadic() != mdata.Sig.Variadic() {
		return fmt.Errorf("variadic form differs from trait declaration")
	}
	results, wantResults := sig.Results(), mdata.Sig.Results()
	if results.Len() != wantResults.Len() {
		return fmt.Errorf("wanted %d results, got %d", wantResults.Len(), results.Len())
	}
	for i := 0; i < wantResults.Len(); i++ {
		if !types.Identical(results.At(i).Type(), wantResults.At(i).Type()) {
			return fmt.Errorf("result %d type mismatch with trait declaration", i)
		}
	}
	return nil
}

func (td *TraitData) method(name string) *MethodData {
	for _, m := range td.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}
