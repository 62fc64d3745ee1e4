// Copyright (c) 2025 Visvasity LLC

// Dyngen generates lightweight dynamic-dispatch code for Go interfaces.
//
// A Go interface value carries a runtime-built itab, and converting a
// concrete value into an interface may box it. For dispatch-heavy,
// allocation-averse code, dyngen offers an alternative: a trait is an
// ordinary interface declaration, and dyngen compiles its method set into
// a minimal static dispatch table plus a two-word fat-pointer handle that
// references any implementing value in place.
//
// For example, given this snippet,
//
//	package input
//
//	type Spam interface {
//		//dyngen:mut
//		Ham() int32
//
//		Eggs() int32
//	}
//
//	func SpamDefaultEggs(self interface{ Eggs() int32 }) int32 { return 10 }
//
//	type Counter int32
//
//	func (c *Counter) Ham() int32 { *c += 2; return int32(*c) - 1 }
//
// running this command
//
//	dyngen -inpkg ./input -outpkg output -outdir ./output 'Spam=Counter'
//
// will create file spam.dyngen.go in ./output containing the dispatch
// table type, the handle pair, the dispatch views, and per-type
// constructors with the following interface:
//
//	type SpamVTable struct {
//		Ham  func(self dyn.SelfMut) int32
//		Eggs func(self dyn.Self) int32
//	}
//
//	type SpamRef struct { ... }    // shared handle; copyable
//	type SpamRefMut struct { ... } // exclusive handle; do not copy
//
//	func (r *SpamRef) Deref() *SpamTarget
//	func (r *SpamRefMut) Deref() *SpamTargetMut
//	func (r *SpamRefMut) AsRef() SpamRef
//
//	func (t *SpamTarget) Eggs() int32   // non-mutating methods only
//	func (t *SpamTargetMut) Ham() int32 // full contract
//	func (t *SpamTargetMut) Eggs() int32
//
//	func NewCounterSpamRef(v *input.Counter) SpamRef
//	func NewCounterSpamRefMut(v *input.Counter) SpamRefMut
//
// Methods carrying a //dyngen:mut directive take the mutable erased
// receiver and are reachable only through SpamRefMut. A package-level
// function named <Trait>Default<Method> supplies a default body for
// implementing types that omit the method; its calls on self dispatch
// through the table, never statically. The body's self parameter is an
// interface over the trait's methods, restricted to the non-mutating
// ones when the defaulted method itself is not mutating.
//
// A trait with exactly one method gets no table at all: the erased
// method pointer is stored inline in the handle and dispatch is a
// single indirect call. The choice is automatic and does not change the
// generated constructors or Deref.
//
// Trait specs may also be listed in a dyngen.yaml config file; see the
// -config flag.
package main

//go:generate go run . -config dyngen.yaml

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/visvasity/dyngen/dyn"
	"github.com/visvasity/dyngen/typecheck"
)

var (
	inPkg      = flag.String("inpkg", "", "package path/name with the trait declarations")
	outPkg     = flag.String("outpkg", "", "package name for the generated files")
	outDir     = flag.String("outdir", "", "output directory for the generated files")
	configFile = flag.String("config", "", "path to a dyngen.yaml config file")
	verbose    = flag.Bool("v", false, "enable verbose diagnostics")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of dyngen:\n")
	fmt.Fprintf(os.Stderr, "\tdyngen -inpkg '...' -outpkg '...' -outdir '...' 'Trait=Impl1,Impl2'... # Must be a single package\n")
	fmt.Fprintf(os.Stderr, "\tdyngen -config dyngen.yaml\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dyngen: ")

	flag.Usage = Usage
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fatalf("could not create logger: %v", err)
		}
		typecheck.SetLogger(l)
	}

	cfg, err := resolveConfig(flag.Args())
	if err != nil {
		fatalf("%v", err)
	}

	// Handles only work where the runtime's layout assumptions hold;
	// refuse to generate code for a bad target.
	if err := dyn.PlatformCheck(); err != nil {
		fatalf("unsupported target platform: %v", err)
	}

	pkg, err := loadPackage(cfg.InPkg)
	if err != nil {
		fatalf("%v", err)
	}

	checker := typecheck.New(pkg)
	g := newGenerator(cfg.OutPkg)
	for _, ts := range cfg.Traits {
		tdata, err := checker.Check(ts.Name, ts.Impls)
		if err != nil {
			fatalf("%v", err)
		}
		if err := g.generate(tdata); err != nil {
			fatalf("%v", err)
		}
	}

	for _, trait := range g.GetTraits() {
		// Format the output.
		src := g.GetSource(trait)

		// Write to file.
		outputName := filepath.Join(cfg.OutDir, strings.ToLower(trait)+".dyngen.go")
		if err := os.WriteFile(outputName, src, 0644); err != nil {
			fatalf("writing output: %s", err)
		}
	}

	// Create a common.dyngen.go file with the input package aliases.
	src := g.GetSource("")
	outputName := filepath.Join(cfg.OutDir, "common.dyngen.go")
	if err := os.WriteFile(outputName, src, 0644); err != nil {
		fatalf("writing common.dyngen.go: %s", err)
	}
}

// fatalf logs the message and exits, colorizing when stderr is a
// terminal.
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	log.Fatal(msg)
}

// resolveConfig builds the effective configuration from the config
// file, the flags, and the command-line trait arguments. Flags win over
// file values; trait arguments and a -config file are mutually
// exclusive.
func resolveConfig(args []string) (*Config, error) {
	cfg := new(Config)
	switch {
	case *configFile != "":
		if len(args) != 0 {
			return nil, fmt.Errorf("trait arguments cannot be combined with the -config flag")
		}
		v, err := LoadConfig(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = v

	case len(args) == 0:
		if _, err := os.Stat(DefaultConfigName); err != nil {
			flag.Usage()
			os.Exit(2)
		}
		v, err := LoadConfig(DefaultConfigName)
		if err != nil {
			return nil, err
		}
		cfg = v

	default:
		for _, arg := range args {
			ts, err := parseTraitArg(arg)
			if err != nil {
				return nil, err
			}
			cfg.Traits = append(cfg.Traits, ts)
		}
	}

	if *inPkg != "" {
		cfg.InPkg = *inPkg
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *outPkg != "" {
		cfg.OutPkg = *outPkg
	}
	cfg.setDefaults()
	if cfg.OutDir == "" {
		return nil, fmt.Errorf("output directory must be set with -outdir or the config file")
	}
	if err := cfg.validate("command line"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadPackage(pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		// Syntax is needed for the //dyngen:mut method directives.
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pkg)
	if err != nil {
		return nil, err
	}
	if n := packages.PrintErrors(pkgs); n != 0 {
		return nil, fmt.Errorf("found %d errors in package %q", n, pkg)
	}
	return pkgs[0], nil
}

const dynPkgPath = "github.com/visvasity/dyngen/dyn"

type Generator struct {
	pkgName string

	common bytes.Buffer

	bufferMap map[string]*bytes.Buffer

	// importsMap holds a mapping from a package path name to list of
	// trait names in the bufferMap that need to import the package.
	// For example,
	//
	//   importsMap["github.com/visvasity/dyngen/dyn"]["Spam"] = ""
	//
	// entry indicates an import statement like,
	//
	//   import "github.com/visvasity/dyngen/dyn"
	//
	// in the generated file named "spam.dyngen.go".
	importsMap map[string]map[string]string

	// aliasNames collects the input package declarations re-exported as
	// type aliases from the "common.dyngen.go" generated file.
	aliasNames []string

	traitDataMap map[string]*typecheck.TraitData
}

func newGenerator(pkgName string) *Generator {
	return &Generator{
		pkgName:      pkgName,
		bufferMap:    make(map[string]*bytes.Buffer),
		importsMap:   make(map[string]map[string]string),
		traitDataMap: make(map[string]*typecheck.TraitData),
	}
}

func (g *Generator) refName(t string) string {
	return t + "Ref"
}

func (g *Generator) refMutName(t string) string {
	return t + "RefMut"
}

func (g *Generator) targetName(t string) string {
	return t + "Target"
}

func (g *Generator) targetMutName(t string) string {
	return t + "TargetMut"
}

func (g *Generator) vtableName(t string) string {
	return t + "VTable"
}

func (g *Generator) getBuffer(traitName string) *bytes.Buffer {
	if len(traitName) == 0 {
		return &g.common
	}
	if b, ok := g.bufferMap[traitName]; ok {
		return b
	}
	b := new(bytes.Buffer)
	g.bufferMap[traitName] = b
	return b
}

func (g *Generator) addImport(traitName string, importName, packagePath string) error {
	vmap, ok := g.importsMap[packagePath]
	if !ok {
		vmap = make(map[string]string)
		g.importsMap[packagePath] = vmap
	}

	x, ok := vmap[traitName]
	if !ok {
		vmap[traitName] = importName
		return nil
	}

	if x != importName {
		return fmt.Errorf("multiple different import names for package %q by trait %q", packagePath, traitName)
	}
	return nil
}

func (g *Generator) P(traitName string, v ...any) {
	buf := g.getBuffer(traitName)
	for _, x := range v {
		fmt.Fprint(buf, x)
	}
	fmt.Fprintln(buf)
}

func (g *Generator) GetTraits() []string {
	return slices.Sorted(maps.Keys(g.bufferMap))
}

func (g *Generator) GetSource(traitName string) []byte {
	buf := g.getSourceWithImports(traitName)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		log.Printf("warning: internal error: invalid Go generated: %s", err)
		log.Printf("warning: compile the package to analyze the error")
		return buf.Bytes()
	}
	return src
}

func (g *Generator) getImports(traitName string) [][2]string {
	var imports [][2]string
	for _, pkgPath := range slices.Sorted(maps.Keys(g.importsMap)) {
		imp, ok := g.importsMap[pkgPath][traitName]
		if !ok {
			continue
		}
		imports = append(imports, [2]string{imp, pkgPath})
	}
	return imports
}

func (g *Generator) getSourceWithImports(traitName string) *bytes.Buffer {
	if len(traitName) == 0 {
		g.generateCommonAliases()
	}

	buf := new(bytes.Buffer)

	fmt.Fprintln(buf, "// Code generated by github.com/visvasity/dyngen. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package", g.pkgName)
	fmt.Fprintln(buf)

	imports := g.getImports(traitName)
	if len(imports) != 0 {
		fmt.Fprintln(buf, "import (")
		for _, imp := range imports {
			if len(imp[0]) == 0 {
				fmt.Fprintf(buf, "%q\n", imp[1])
			} else {
				fmt.Fprintf(buf, "%s %q\n", imp[0], imp[1])
			}
		}
		fmt.Fprintln(buf, ")")
	}
	fmt.Fprintln(buf)

	io.Copy(buf, g.getBuffer(traitName))
	return buf
}

// generate emits all dispatch code for one validated trait.
func (g *Generator) generate(tdata *typecheck.TraitData) error {
	tn := tdata.TraitName
	if _, ok := g.traitDataMap[tn]; ok {
		return fmt.Errorf("trait %q is listed multiple times", tn)
	}
	g.traitDataMap[tn] = tdata

	if err := g.addImport(tn, "", dynPkgPath); err != nil {
		return err
	}

	if !tdata.Inline() {
		g.generateVTableType(tdata)
	}
	g.generateHandleTypes(tdata)
	g.generateTargetTypes(tdata)

	for _, idata := range tdata.Impls {
		g.generateImplMetadata(tdata, idata)
		g.generateImplConstructors(tdata, idata)
	}

	g.aliasNames = append(g.aliasNames, tn)
	for _, idata := range tdata.Impls {
		g.aliasNames = append(g.aliasNames, idata.TypeName)
	}
	return nil
}

// metaTypeString returns the metadata type stored in the trait's
// handles: a pointer to the shared vtable, or the erased method func
// itself for single-method traits.
func (g *Generator) metaTypeString(tdata *typecheck.TraitData) string {
	if !tdata.Inline() {
		return "*" + g.vtableName(tdata.TraitName)
	}
	return "func(" + g.slotParamDecl(tdata, tdata.Methods[0]) + ")" + g.resultString(tdata, tdata.Methods[0])
}

// paramStrings renders a method's parameter declarations and the
// matching call-site argument list.
func (g *Generator) paramStrings(tdata *typecheck.TraitData, mdata *typecheck.MethodData) (decl, call string) {
	params := mdata.Sig.Params()
	qf := g.qualifier(tdata.TraitName)
	decls := make([]string, 0, params.Len())
	calls := make([]string, 0, params.Len())
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		name := p.Name()
		if name == "" || name == "_" {
			name = fmt.Sprintf("a%d", i)
		}
		tstr := types.TypeString(p.Type(), qf)
		arg := name
		if mdata.Sig.Variadic() && i == params.Len()-1 {
			tstr = "..." + types.TypeString(p.Type().(*types.Slice).Elem(), qf)
			arg += "..."
		}
		decls = append(decls, name+" "+tstr)
		calls = append(calls, arg)
	}
	return strings.Join(decls, ", "), strings.Join(calls, ", ")
}

// resultString renders a method's result list with a leading space when
// non-empty.
func (g *Generator) resultString(tdata *typecheck.TraitData, mdata *typecheck.MethodData) string {
	results := mdata.Sig.Results()
	qf := g.qualifier(tdata.TraitName)
	switch results.Len() {
	case 0:
		return ""
	case 1:
		return " " + types.TypeString(results.At(0).Type(), qf)
	}
	vs := make([]string, results.Len())
	for i := range vs {
		vs[i] = types.TypeString(results.At(i).Type(), qf)
	}
	return " (" + strings.Join(vs, ", ") + ")"
}

// slotParamDecl renders a dispatch slot's parameter declaration,
// beginning with the erased self of matching mutability.
func (g *Generator) slotParamDecl(tdata *typecheck.TraitData, mdata *typecheck.MethodData) string {
	decl, _ := g.paramStrings(tdata, mdata)
	self := "self dyn.Self"
	if mdata.Mut {
		self = "self dyn.SelfMut"
	}
	if decl != "" {
		self += ", "
	}
	return self + decl
}

// qualifier returns a types.Qualifier that renders package-qualified
// names and records the import for the trait's generated file.
func (g *Generator) qualifier(traitName string) types.Qualifier {
	return func(p *types.Package) string {
		g.addImport(traitName, "", p.Path())
		return p.Name()
	}
}

// inputPkgName returns the package qualifier for the trait's declaring
// package and records the import.
func (g *Generator) inputPkgName(tdata *typecheck.TraitData) string {
	g.addImport(tdata.TraitName, "", tdata.PkgPath)
	return tdata.PkgName
}

// implTypeString returns the package-qualified implementing type name.
func (g *Generator) implTypeString(tdata *typecheck.TraitData, idata *typecheck.ImplData) string {
	g.addImport(tdata.TraitName, "", idata.PkgPath)
	return idata.PkgName + "." + idata.TypeName
}

// implPrefix returns the lower-cased identifier prefix for a
// (type, trait) pair, e.g. "counterSpam".
func (g *Generator) implPrefix(tdata *typecheck.TraitData, idata *typecheck.ImplData) string {
	name := idata.TypeName
	return strings.ToLower(name[:1]) + name[1:] + tdata.TraitName
}

func (g *Generator) generateVTableType(tdata *typecheck.TraitData) {
	tn := tdata.TraitName

	g.P(tn)
	g.P(tn, "// ", g.vtableName(tn), " is the dispatch table for the ", tn, " trait. Slot order is")
	g.P(tn, "// the trait's method declaration order and is identical for every")
	g.P(tn, "// implementing type; one table is shared by all handles of a type.")
	g.P(tn, "type ", g.vtableName(tn), " struct {")
	for _, mdata := range tdata.Methods {
		g.P(tn, "  ", mdata.Name, " func(", g.slotParamDecl(tdata, mdata), ")", g.resultString(tdata, mdata))
	}
	g.P(tn, "}")
	g.P(tn)
}

func (g *Generator) generateHandleTypes(tdata *typecheck.TraitData) {
	tn := tdata.TraitName
	meta := g.metaTypeString(tdata)

	g.P(tn)
	g.P(tn, "// ", g.refName(tn), " is a shared, read-only handle to a value implementing ", tn, ".")
	g.P(tn, "// It may be freely copied; it does not own the value and must not")
	g.P(tn, "// outlive it.")
	g.P(tn, "type ", g.refName(tn), " struct {")
	g.P(tn, "  ref dyn.Ref[", meta, "]")
	g.P(tn, "}")
	g.P(tn)

	g.P(tn)
	g.P(tn, "// Deref returns the dispatch view of the handle. The view shares the")
	g.P(tn, "// handle's storage and cannot be constructed standalone.")
	g.P(tn, "func (r *", g.refName(tn), ") Deref() *", g.targetName(tn), " {")
	g.P(tn, "  return (*", g.targetName(tn), ")(r)")
	g.P(tn, "}")
	g.P(tn)

	g.P(tn)
	g.P(tn, "// ", g.refMutName(tn), " is an exclusive, mutable handle to a value implementing")
	g.P(tn, "// ", tn, ". Do not copy it; pass it along or reborrow with AsRef.")
	g.P(tn, "type ", g.refMutName(tn), " struct {")
	g.P(tn, "  ref dyn.RefMut[", meta, "]")
	g.P(tn, "}")
	g.P(tn)

	g.P(tn)
	g.P(tn, "// Deref returns the dispatch view of the handle. The view shares the")
	g.P(tn, "// handle's storage and cannot be constructed standalone.")
	g.P(tn, "func (r *", g.refMutName(tn), ") Deref() *", g.targetMutName(tn), " {")
	g.P(tn, "  return (*", g.targetMutName(tn), ")(r)")
	g.P(tn, "}")
	g.P(tn)

	g.P(tn)
	g.P(tn, "// AsRef reborrows the handle as a shared ", g.refName(tn), ".")
	g.P(tn, "func (r *", g.refMutName(tn), ") AsRef() ", g.refName(tn), " {")
	g.P(tn, "  return ", g.refName(tn), "{ref: r.ref.Ref()}")
	g.P(tn, "}")
	g.P(tn)
}

// generateTargetTypes emits the dispatch views. Every method body is a
// trivial forwarder so the view collapses into a single indirect call.
func (g *Generator) generateTargetTypes(tdata *typecheck.TraitData) {
	tn := tdata.TraitName
	meta := g.metaTypeString(tdata)

	g.P(tn)
	g.P(tn, "// ", g.targetName(tn), " exposes the non-mutating methods of ", tn, " for dispatch")
	g.P(tn, "// through a shared handle. Obtain it only via Deref.")
	g.P(tn, "type ", g.targetName(tn), " struct {")
	g.P(tn, "  ref dyn.Ref[", meta, "]")
	g.P(tn, "}")
	g.P(tn)
	for _, mdata := range tdata.Methods {
		if mdata.Mut {
			continue
		}
		g.generateTargetMethod(tdata, g.targetName(tn), mdata)
	}

	g.P(tn)
	g.P(tn, "// ", g.targetMutName(tn), " exposes the full ", tn, " contract for dispatch through an")
	g.P(tn, "// exclusive handle. Obtain it only via Deref.")
	g.P(tn, "type ", g.targetMutName(tn), " struct {")
	g.P(tn, "  ref dyn.RefMut[", meta, "]")
	g.P(tn, "}")
	g.P(tn)
	for _, mdata := range tdata.Methods {
		g.generateTargetMethod(tdata, g.targetMutName(tn), mdata)
	}

	pkgName := g.inputPkgName(tdata)
	if !tdata.HasMut() {
		g.P(tn, "var _ ", pkgName, ".", tn, " = (*", g.targetName(tn), ")(nil)")
	}
	g.P(tn, "var _ ", pkgName, ".", tn, " = (*", g.targetMutName(tn), ")(nil)")
	g.P(tn)
}

func (g *Generator) generateTargetMethod(tdata *typecheck.TraitData, target string, mdata *typecheck.MethodData) {
	tn := tdata.TraitName
	decl, call := g.paramStrings(tdata, mdata)

	self := "t.ref.Self()"
	if mdata.Mut {
		self = "t.ref.SelfMut()"
	}
	args := self
	if call != "" {
		args += ", " + call
	}

	var invoke string
	if tdata.Inline() {
		invoke = "t.ref.Meta()(" + args + ")"
	} else {
		invoke = "t.ref.Meta()." + mdata.Name + "(" + args + ")"
	}

	g.P(tn)
	g.P(tn, "func (t *", target, ") ", mdata.Name, "(", decl, ")", g.resultString(tdata, mdata), " {")
	if mdata.Sig.Results().Len() == 0 {
		g.P(tn, "  ", invoke)
	} else {
		g.P(tn, "  return ", invoke)
	}
	g.P(tn, "}")
	g.P(tn)
}

// generateSlotBody emits one slot's function body for the given impl.
// The meta argument names the metadata value that default-method shims
// rebuild their dispatch view with.
func (g *Generator) generateSlotBody(tdata *typecheck.TraitData, idata *typecheck.ImplData, mdata *typecheck.MethodData, imdata *typecheck.ImplMethodData, meta string) {
	tn := tdata.TraitName
	_, call := g.paramStrings(tdata, mdata)

	ret := "return "
	if mdata.Sig.Results().Len() == 0 {
		ret = ""
	}

	if !imdata.UseDefault {
		as := "dyn.As"
		if mdata.Mut {
			as = "dyn.AsMut"
		}
		g.P(tn, "    ", ret, as, "[", g.implTypeString(tdata, idata), "](self).", mdata.Name, "(", call, ")")
		return
	}

	// Forward to the trait's default body through a rebuilt dispatch
	// view, so that its calls on self go through the table. A
	// non-mutating slot holds only a shared handle, so its default body
	// gets the read-only view; the checker guarantees the body's self
	// type fits it.
	args := "view.Deref()"
	if call != "" {
		args += ", " + call
	}
	if mdata.Mut {
		g.P(tn, "    view := ", g.refMutName(tn), "{ref: dyn.RefMutFromSelf(self, ", meta, ")}")
	} else {
		g.P(tn, "    view := ", g.refName(tn), "{ref: dyn.RefFromSelf(self, ", meta, ")}")
	}
	g.P(tn, "    ", ret, g.inputPkgName(tdata), ".", mdata.DefaultName, "(", args, ")")
}

// generateImplMetadata emits the per-(type, trait) dispatch metadata: a
// vtable built once at package init, or a single erased method func for
// single-method traits.
func (g *Generator) generateImplMetadata(tdata *typecheck.TraitData, idata *typecheck.ImplData) {
	tn := tdata.TraitName
	prefix := g.implPrefix(tdata, idata)

	if tdata.Inline() {
		mdata := tdata.Methods[0]
		name := prefix + mdata.Name
		g.P(tn)
		g.P(tn, "// ", name, " is the erased ", mdata.Name, " implementation for ", g.implTypeString(tdata, idata), ",")
		g.P(tn, "// stored directly in ", tn, " handles with no table behind it.")
		g.P(tn, "func ", name, "(", g.slotParamDecl(tdata, mdata), ")", g.resultString(tdata, mdata), " {")
		g.generateSlotBody(tdata, idata, mdata, idata.Methods[0], name)
		g.P(tn, "}")
		g.P(tn)
		return
	}

	vtVar := prefix + "VTable"
	builder := "new" + strings.ToUpper(vtVar[:1]) + vtVar[1:]
	g.P(tn)
	g.P(tn, "// ", vtVar, " is the ", tn, " dispatch table specialized to ", g.implTypeString(tdata, idata), ".")
	g.P(tn, "// It is built once and shared by every handle of that type.")
	g.P(tn, "var ", vtVar, " = ", builder, "()")
	g.P(tn)
	g.P(tn, "func ", builder, "() *", g.vtableName(tn), " {")
	g.P(tn, "  vt := new(", g.vtableName(tn), ")")
	for i, mdata := range tdata.Methods {
		g.P(tn, "  vt.", mdata.Name, " = func(", g.slotParamDecl(tdata, mdata), ")", g.resultString(tdata, mdata), " {")
		g.generateSlotBody(tdata, idata, mdata, idata.Methods[i], "vt")
		g.P(tn, "  }")
	}
	g.P(tn, "  return vt")
	g.P(tn, "}")
	g.P(tn)
}

func (g *Generator) generateImplConstructors(tdata *typecheck.TraitData, idata *typecheck.ImplData) {
	tn := tdata.TraitName
	prefix := g.implPrefix(tdata, idata)
	impl := g.implTypeString(tdata, idata)

	meta := prefix + "VTable"
	if tdata.Inline() {
		meta = prefix + tdata.Methods[0].Name
	}

	g.P(tn)
	g.P(tn, "// New", idata.TypeName, g.refName(tn), " returns a shared ", tn, " handle over v.")
	g.P(tn, "func New", idata.TypeName, g.refName(tn), "(v *", impl, ") ", g.refName(tn), " {")
	g.P(tn, "  return ", g.refName(tn), "{ref: dyn.NewRef(v, ", meta, ")}")
	g.P(tn, "}")
	g.P(tn)

	g.P(tn)
	g.P(tn, "// New", idata.TypeName, g.refMutName(tn), " returns an exclusive ", tn, " handle over v. The")
	g.P(tn, "// value must not be accessed directly while the handle is in use.")
	g.P(tn, "func New", idata.TypeName, g.refMutName(tn), "(v *", impl, ") ", g.refMutName(tn), " {")
	g.P(tn, "  return ", g.refMutName(tn), "{ref: dyn.NewRefMut(v, ", meta, ")}")
	g.P(tn, "}")
	g.P(tn)
}

// generateCommonAliases re-exports the input package trait and impl
// type names from the generated package.
func (g *Generator) generateCommonAliases() {
	if len(g.aliasNames) == 0 {
		return
	}
	var pkgName, pkgPath string
	for _, tdata := range g.traitDataMap {
		pkgName, pkgPath = tdata.PkgName, tdata.PkgPath
		break
	}
	g.addImport("", "", pkgPath)

	g.P("")
	g.P("", "// Aliases for the input package declarations.")
	g.P("", "type (")
	for _, name := range slices.Compact(slices.Sorted(slices.Values(g.aliasNames))) {
		g.P("", "  ", name, " = ", pkgName, ".", name)
	}
	g.P("", ")")
	g.P("")
}
