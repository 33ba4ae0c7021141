package decl

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litgen/internal/diagnostic"
)

func mustParse(t *testing.T, yaml string) *File {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return f
}

func codes(ds []diagnostic.Diagnostic) []string {
	var out []string
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	f := mustParse(t, `
maps:
  - name: primes
    key: uint32
    value: uint32
    entries: "1 => 2, 3 => 4, 5 => 6"
  - name: inferred
    entries: "'a' => 1.5, 'b' => 2"
  - name: empty
    key: string
    value: bool
getters: |
  Foo: uint32 = 10;
  export Bar: uint32 = 42;
  export Baz: uint16 = 21;
  Ratio: float64 = 1;
  Letter: rune = 'x';
  Name: string = "litgen";
  On: bool = true;
  Raw: string = `+"`raw`"+`;
  Last: int8 = -128;
`)

	res := Validate(f)
	assert.True(t, res.IsValid(), spew.Sdump(res.Errors))
	assert.Empty(t, res.Warnings)
	require.NoError(t, res.Error())
}

func TestValidate_LiteralType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		line int
	}{
		{"overflow", "getters: \"Big: uint16 = 70000;\"", 1},
		{"negative unsigned", "getters: \"Neg: uint32 = -1;\"", 1},
		{"string for int", "getters: \"S: int = \\\"x\\\";\"", 1},
		{"truncated float", "getters: \"F: int = 1.5;\"", 1},
		{"int for bool", "getters: \"B: bool = 1;\"", 1},
		{"map key", "maps:\n  - name: m\n    key: uint8\n    value: int\n    entries: \"1 => 2, 256 => 3\"", 5},
		{"map value", "maps:\n  - name: m\n    key: int\n    value: string\n    entries:\n      - \"1 => 2\"", 6},
		{"inferred key mismatch", "maps:\n  - name: m\n    entries: \"1 => 2, \\\"x\\\" => 3\"", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Validate(mustParse(t, tt.yaml))
			require.Len(t, res.Errors, 1, spew.Sdump(res.Errors))

			d := res.Errors[0]
			assert.Equal(t, diagnostic.CodeLiteralType, d.Code)
			assert.Equal(t, tt.line, d.Line)
			require.ErrorIs(t, res.Error(), diagnostic.ErrLiteralType)
		})
	}
}

func TestValidate_LiteralTypeAfterMultilineRaw(t *testing.T) {
	t.Parallel()

	f := mustParse(t, "getters: |\n  A: string = `one\n  two`;\n  B: uint8 = 300;\n")

	res := Validate(f)
	require.Len(t, res.Errors, 1, spew.Sdump(res.Errors))
	assert.Equal(t, "getters.B", res.Errors[0].Decl)
	assert.Equal(t, 4, res.Errors[0].Line)
}

func TestValidate_NameCollision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"same binding twice", "getters: \"Foo: int = 1; Foo: int = 2;\""},
		{"same after visibility", "getters: \"Foo: int = 1; foo: int = 2;\""},
		{"map and getter", "maps:\n  - name: table\n    entries: \"1 => 2\"\ngetters: \"table: int = 1;\""},
		{"predeclared type", "getters: \"uint32: uint32 = 1;\""},
		{"predeclared func", "maps:\n  - {name: len, entries: \"1 => 2\"}"},
		{"two maps", "maps:\n  - {name: m, entries: \"1 => 2\"}\n  - {name: m, entries: \"1 => 2\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Validate(mustParse(t, tt.yaml))
			assert.Equal(t, []string{diagnostic.CodeNameCollision}, codes(res.Errors), spew.Sdump(res.Errors))
			require.ErrorIs(t, res.Error(), diagnostic.ErrNameCollision)
		})
	}

	// Exporting one of two otherwise equal names keeps them apart.
	res := Validate(mustParse(t, "getters: \"foo: int = 1; export foo: int = 2;\""))
	assert.True(t, res.IsValid())
}

func TestValidate_Types(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown", "getters: \"A: u32 = 1;\""},
		{"qualified", "getters: \"A: time.Duration = 1;\""},
		{"interface", "getters: \"A: any = 1;\""},
		{"error", "getters: \"A: error = 1;\""},
		{"missing type", "getters:\n  - {name: A, value: 1}"},
		{"empty map without types", "maps:\n  - name: m"},
		{"empty map without value type", "maps:\n  - name: m\n    key: int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Validate(mustParse(t, tt.yaml))
			require.NotEmpty(t, res.Errors)

			for _, code := range codes(res.Errors) {
				assert.Equal(t, diagnostic.CodeUnknownType, code, spew.Sdump(res.Errors))
			}

			require.ErrorIs(t, res.Error(), diagnostic.ErrUnknownType)
		})
	}
}

func TestValidate_Names(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"blank", "getters:\n  - {name: _, type: int, value: 1}"},
		{"not identifier", "getters:\n  - {name: 'a-b', type: int, value: 1}"},
		{"empty", "getters:\n  - {type: int, value: 1}"},
		{"cannot export", "getters:\n  - {name: _x, type: int, value: 1, exported: true}"},
		{"map name", "maps:\n  - {name: '1m', key: int, value: int}"},
		{"package", "package: 'my-pkg'"},
		{"init map", "maps:\n  - {name: init, entries: \"1 => 2\"}"},
		{"init getter", "getters: \"init: int = 1;\""},
		{"main in package main", "package: main\ngetters: \"main: int = 1;\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Validate(mustParse(t, tt.yaml))
			assert.Equal(t, []string{diagnostic.CodeInvalidName}, codes(res.Errors), spew.Sdump(res.Errors))
			require.ErrorIs(t, res.Error(), diagnostic.ErrInvalidName)
		})
	}
}

func TestValidateIn_ReservedNames(t *testing.T) {
	t.Parallel()

	f := mustParse(t, "maps:\n  - {name: main, entries: \"1 => 2\"}")

	assert.True(t, Validate(f).IsValid())
	assert.True(t, ValidateIn(f, "tools").IsValid())

	res := ValidateIn(f, "main")
	assert.Equal(t, []string{diagnostic.CodeInvalidName}, codes(res.Errors), spew.Sdump(res.Errors))
	assert.Contains(t, res.Errors[0].Message, "entry point")

	// Only the exact names are reserved.
	f = mustParse(t, "getters: \"export main: int = 1; export init: int = 2;\"")
	assert.True(t, ValidateIn(f, "main").IsValid())
}

func TestReserved(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Reserved("p", "init"))
	assert.NotEmpty(t, Reserved("main", "init"))
	assert.NotEmpty(t, Reserved("main", "main"))
	assert.Empty(t, Reserved("p", "main"))
	assert.Empty(t, Reserved("main", "Main"))
	assert.Empty(t, Reserved("p", "initial"))
}

func TestValidate_Syntax(t *testing.T) {
	t.Parallel()

	res := Validate(mustParse(t, "version: \"2\""))
	assert.Equal(t, []string{diagnostic.CodeSyntax}, codes(res.Errors))

	res = Validate(mustParse(t, "maps:\n  - {name: m, style: sorted, entries: \"1 => 2\"}"))
	assert.Equal(t, []string{diagnostic.CodeSyntax}, codes(res.Errors))

	res = Validate(nil)
	require.ErrorIs(t, res.Error(), diagnostic.ErrSyntax)
}

func TestValidate_DuplicateKeyWarning(t *testing.T) {
	t.Parallel()

	res := Validate(mustParse(t, "maps:\n  - name: m\n    entries: \"1 => 2, 1 => 9\""))
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicateKey, res.Warnings[0].Code)
	assert.Contains(t, res.Warnings[0].Message, "key 1")

	res = Validate(mustParse(t, "maps:\n  - name: m\n    key: float32\n    entries: \"1.0 => 1, 1.00000001 => 2\""))
	assert.True(t, res.IsValid(), spew.Sdump(res.Errors))
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicateKey, res.Warnings[0].Code)
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	t.Parallel()

	res := Validate(mustParse(t, "getters: \"A: u8 = 1; B: uint8 = 256; A: int = 1;\""))
	assert.ElementsMatch(t,
		[]string{diagnostic.CodeUnknownType, diagnostic.CodeLiteralType, diagnostic.CodeNameCollision},
		codes(res.Errors))

	err := res.Error()
	require.ErrorIs(t, err, diagnostic.ErrUnknownType)
	require.ErrorIs(t, err, diagnostic.ErrLiteralType)
	require.ErrorIs(t, err, diagnostic.ErrNameCollision)
}

func TestIsBasicType(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"int", "int8", "uint64", "uintptr", "float32", "complex64", "string", "bool", "byte", "rune"} {
		assert.True(t, IsBasicType(name), name)
	}

	for _, name := range []string{"", "any", "error", "comparable", "u32", "nil", "true", "time.Duration"} {
		assert.False(t, IsBasicType(name), name)
	}
}

func TestValidate_Suggestions(t *testing.T) {
	t.Parallel()

	res := Validate(mustParse(t, "getters: \"A: flaot64 = 1;\""))
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "did you mean float64?")

	res = Validate(mustParse(t, "maps:\n  - {name: m, style: literl, entries: \"1 => 2\"}"))
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "did you mean literal?")

	res = Validate(mustParse(t, "getters: \"A: widget = 1;\""))
	require.Len(t, res.Errors, 1)
	assert.NotContains(t, res.Errors[0].Message, "did you mean")
}

func TestBasicTypes(t *testing.T) {
	t.Parallel()

	names := BasicTypes()
	assert.Contains(t, names, "uint32")
	assert.Contains(t, names, "rune")
	assert.NotContains(t, names, "any")
	assert.IsIncreasing(t, names)
}
