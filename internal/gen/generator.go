package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"strings"

	"github.com/cockroachdb/errors"

	"litgen/get"
	"litgen/internal/analyze"
	"litgen/internal/common"
	"litgen/internal/decl"
	"litgen/internal/diagnostic"
)

// codeAccessor marks info diagnostics about how Getter is referenced.
const codeAccessor = "accessor"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the package generated into. A package
	// named in the declaration file takes precedence when this is empty.
	PackageName string
	// PkgPath is the import path of the package generated into. When it
	// equals the accessor path, Getter is referenced unqualified.
	PkgPath string
	// AccessorPath is the import path of the package defining Getter.
	// Defaults to get.ImportPath.
	AccessorPath string
	// OutputDir is the directory where generated files are written. It is
	// only used for the debug sidecar of unformattable output.
	OutputDir string
	// Target describes the existing package, if it was loaded. Generated
	// names must not collide with its declarations.
	Target *analyze.PackageInfo
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		AccessorPath: get.ImportPath,
	}
}

// ConfigForTarget returns a configuration generating into the loaded
// package.
func ConfigForTarget(target *analyze.PackageInfo) GeneratorConfig {
	cfg := DefaultGeneratorConfig()
	cfg.PackageName = target.Name
	cfg.PkgPath = target.Path
	cfg.OutputDir = target.Dir
	cfg.Target = target

	return cfg
}

// Generator generates Go code from declaration files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "literals_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// Diagnostics holds the warnings and notes raised while generating.
	Diagnostics *diagnostic.Diagnostics
}

// Generate validates f against the package it is generated into and
// renders it into one Go source file. Nothing is rendered if validation
// reports an error.
func (g *Generator) Generate(f *decl.File) (*GeneratedFile, error) {
	if f == nil {
		return nil, decl.Validate(nil).Error()
	}

	var pkgRes diagnostic.Diagnostics

	pkgName := g.packageName(f, &pkgRes)
	res := decl.ValidateIn(f, pkgName)
	res.Merge(pkgRes)
	res.Merge(g.checkTarget(f))

	if res.HasErrors() {
		return nil, res.Error()
	}

	data := g.buildTemplateData(f, pkgName, res)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	filename := f.OutputName()

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return nil, errors.Wrap(err, "formatting code")
	}

	return &GeneratedFile{
		Filename:    filename,
		Content:     formatted,
		Diagnostics: res,
	}, nil
}

// packageName decides the package clause. A declared package must match
// the package found in the output directory.
func (g *Generator) packageName(f *decl.File, res *diagnostic.Diagnostics) string {
	switch {
	case f.Package == "" && g.config.PackageName == "":
		res.AddError(diagnostic.CodeInvalidName,
			"package name is unknown; set package in the declaration file", "package", 0)

		return ""
	case f.Package == "":
		return g.config.PackageName
	case g.config.PackageName != "" && f.Package != g.config.PackageName:
		res.AddError(diagnostic.CodeInvalidName,
			fmt.Sprintf("package %q does not match package %q of the output directory", f.Package, g.config.PackageName),
			"package", 0)
	}

	return f.Package
}

// checkTarget reports generated names that the target package already
// declares in other files.
func (g *Generator) checkTarget(f *decl.File) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics
	if g.config.Target == nil {
		return res
	}

	check := func(goName, where string, line int) {
		if file, ok := g.config.Target.Declared[goName]; ok {
			res.AddError(diagnostic.CodeNameCollision,
				fmt.Sprintf("%s is already declared in %s", goName, file), where, line)
		}
	}

	for i := range f.Maps {
		m := &f.Maps[i]
		check(m.GoName(), "maps."+m.Name, m.Line)
	}

	for i := range f.Getters {
		b := &f.Getters[i]
		check(b.GoName(), "getters."+b.Name, b.Line)
	}

	return res
}

// accessorPath returns the import path used for Getter.
func (g *Generator) accessorPath(f *decl.File) string {
	if f.Accessor != "" {
		return f.Accessor
	}

	if g.config.AccessorPath != "" {
		return g.config.AccessorPath
	}

	return get.ImportPath
}

// accessorImport decides how the generated file refers to the accessor
// package. It returns no import when the file is generated into the
// accessor package itself, and an alias that avoids every generated and
// existing name otherwise.
func (g *Generator) accessorImport(
	f *decl.File, taken map[string]bool, res *diagnostic.Diagnostics,
) (importSpec, string, bool) {
	accessor := g.accessorPath(f)
	if accessor == g.config.PkgPath {
		res.AddInfo(codeAccessor, "generating into the accessor package; Getter is referenced unqualified", "", 0)
		return importSpec{}, "", false
	}

	base := common.PkgAlias(accessor)
	alias := common.UniqueName(base, func(name string) bool {
		return taken[name] || g.config.Target.Has(name)
	})

	if alias != base {
		res.AddInfo(codeAccessor, fmt.Sprintf("importing %s as %s to avoid a name collision", accessor, alias), "", 0)
	}

	spec := importSpec{Path: accessor}
	if alias != path.Base(accessor) {
		spec.Alias = alias
	}

	return spec, alias + ".", true
}

// buildTemplateData constructs the template data from a validated file.
func (g *Generator) buildTemplateData(f *decl.File, pkgName string, res *diagnostic.Diagnostics) *templateData {
	data := &templateData{
		Source:      f.Source,
		PackageName: pkgName,
	}

	taken := make(map[string]bool)

	for i := range f.Maps {
		m := &f.Maps[i]
		taken[m.GoName()] = true

		data.Maps = append(data.Maps, buildMapData(m))
	}

	for i := range f.Getters {
		taken[f.Getters[i].GoName()] = true
	}

	if len(f.Getters) == 0 {
		return data
	}

	imp, qualifier, ok := g.accessorImport(f, taken, res)
	if ok {
		data.Imports = append(data.Imports, imp)
	}

	for i := range f.Getters {
		data.Getters = append(data.Getters, buildGetterData(&f.Getters[i], qualifier))
	}

	return data
}

func buildMapData(m *decl.MapDecl) mapData {
	folded := m.Entries.LastWins(m.KeyType())

	md := mapData{
		Name:      m.GoName(),
		KeyType:   m.KeyType(),
		ValueType: m.ValueType(),
		Literal:   m.Style == decl.StyleLiteral,
		Size:      len(folded),
	}

	// Inserting every entry in order lets later assignments overwrite
	// earlier ones; a composite literal needs the folded entries.
	entries := m.Entries
	if md.Literal {
		entries = folded
	}

	for _, p := range entries {
		md.Entries = append(md.Entries, entryData{Key: p.Key.Text, Value: p.Value.Text})
	}

	return md
}

func buildGetterData(b *decl.Binding, qualifier string) getterData {
	gd := getterData{
		Name:   b.GoName(),
		Type:   b.Type,
		Value:  b.Value.Text,
		Getter: qualifier + "Getter",
	}

	if !strings.Contains(b.Value.Text, "\n") {
		gd.Doc = b.Value.Text
	}

	return gd
}
