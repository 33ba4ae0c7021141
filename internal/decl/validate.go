package decl

import (
	"fmt"
	"go/token"
	"go/types"

	"litgen/internal/diagnostic"
	"litgen/internal/match"
)

// Validate checks a declaration file before generation: identifiers, name
// collisions, types and that every literal is assignable to its type.
// Duplicate map keys are reported as warnings.
func Validate(f *File) *diagnostic.Diagnostics {
	pkg := ""
	if f != nil {
		pkg = f.Package
	}

	return ValidateIn(f, pkg)
}

// ValidateIn is Validate for a file generated into package pkg, which may
// differ from the package the file declares when that one is empty.
func ValidateIn(f *File, pkg string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeSyntax, "declaration file is nil", "", 0)
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeSyntax,
			fmt.Sprintf("unsupported version %q (expected %q)", f.Version, CurrentVersion), "", 0)
	}

	if f.Package != "" && !isUsableIdent(f.Package) {
		res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("invalid package name %q", f.Package), "package", 0)
	}

	v := &validator{res: res, pkg: pkg, declared: map[string]int{}}

	for i := range f.Maps {
		v.validateMap(&f.Maps[i])
	}

	for i := range f.Getters {
		v.validateBinding(&f.Getters[i])
	}

	checkAssignable(res, v.checks)

	return res
}

type validator struct {
	res *diagnostic.Diagnostics
	pkg string
	// declared maps generated identifiers to the line declaring them.
	declared map[string]int
	checks   []assignCheck
}

// declare registers a generated identifier, reporting a collision with an
// earlier declaration of the same file.
func (v *validator) declare(name, goName string, exported bool, decl string, line int) bool {
	if !isUsableIdent(name) {
		v.res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("%q is not a valid identifier", name), decl, line)
		return false
	}

	if exported && !token.IsExported(goName) {
		v.res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("%q cannot be exported", name), decl, line)
		return false
	}

	if why := Reserved(v.pkg, goName); why != "" {
		v.res.AddError(diagnostic.CodeInvalidName, why, decl, line)
		return false
	}

	if types.Universe.Lookup(goName) != nil {
		v.res.AddError(diagnostic.CodeNameCollision,
			fmt.Sprintf("%s shadows the predeclared identifier", goName), decl, line)

		return false
	}

	if prev, ok := v.declared[goName]; ok {
		v.res.AddError(diagnostic.CodeNameCollision,
			fmt.Sprintf("%s is already declared at line %d", goName, prev), decl, line)

		return false
	}

	v.declared[goName] = line

	return true
}

func (v *validator) validateMap(m *MapDecl) {
	decl := "maps." + m.Name

	v.declare(m.Name, m.GoName(), m.Exported, decl, m.Line)

	if !m.Style.IsValid() {
		v.res.AddError(diagnostic.CodeSyntax,
			fmt.Sprintf("unknown style %q (expected %q or %q)%s", m.Style, StyleInsert, StyleLiteral,
				match.Hint(string(m.Style), []string{string(StyleInsert), string(StyleLiteral)})),
			decl, m.Line)
	}

	keyType, valueType := m.KeyType(), m.ValueType()
	keyOK := v.checkType(keyType, "key", decl, m.Line)
	valueOK := v.checkType(valueType, "value", decl, m.Line)

	for _, dup := range m.Entries.Duplicates(keyType) {
		v.res.AddWarning(diagnostic.CodeDuplicateKey,
			fmt.Sprintf("key %s at line %d is overwritten by line %d", dup.Overwritten.Key, dup.Overwritten.Line, dup.By.Line),
			decl, dup.By.Line)
	}

	for _, p := range m.Entries {
		if keyOK {
			v.checks = append(v.checks, assignCheck{Type: keyType, Lit: p.Key, Role: "key", Decl: decl, Line: p.Line})
		}

		if valueOK {
			v.checks = append(v.checks, assignCheck{Type: valueType, Lit: p.Value, Role: "value", Decl: decl, Line: p.Line})
		}
	}
}

func (v *validator) validateBinding(b *Binding) {
	decl := "getters." + b.Name

	v.declare(b.Name, b.GoName(), b.Exported, decl, b.Line)

	typeOK := v.checkType(b.Type, "value", decl, b.Line)

	if b.Value.IsZero() {
		v.res.AddError(diagnostic.CodeSyntax, "binding has no literal value", decl, b.Line)
		return
	}

	if typeOK {
		v.checks = append(v.checks, assignCheck{Type: b.Type, Lit: b.Value, Role: "value", Decl: decl, Line: b.Line})
	}
}

// checkType reports whether typ names a predeclared basic Go type.
func (v *validator) checkType(typ, role, decl string, line int) bool {
	if typ == "" {
		v.res.AddError(diagnostic.CodeUnknownType,
			fmt.Sprintf("cannot infer %s type without entries; declare it explicitly", role), decl, line)

		return false
	}

	if !IsBasicType(typ) {
		v.res.AddError(diagnostic.CodeUnknownType,
			fmt.Sprintf("%s type %q is not a predeclared basic type%s", role, typ, match.Hint(typ, BasicTypes())),
			decl, line)

		return false
	}

	return true
}

// IsBasicType reports whether name is a predeclared, typed basic Go type
// such as int, uint16, float64, string, rune or bool.
func IsBasicType(name string) bool {
	obj, ok := types.Universe.Lookup(name).(*types.TypeName)
	if !ok {
		return false
	}

	b, ok := obj.Type().(*types.Basic)

	return ok && b.Info()&types.IsUntyped == 0 && b.Kind() != types.UnsafePointer
}

// BasicTypes lists the names IsBasicType accepts, in sorted order.
func BasicTypes() []string {
	var names []string

	for _, name := range types.Universe.Names() {
		if IsBasicType(name) {
			names = append(names, name)
		}
	}

	return names
}

func isUsableIdent(name string) bool {
	return token.IsIdentifier(name) && name != "_"
}
