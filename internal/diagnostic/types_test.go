package diagnostic

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		var d Diagnostics
		d.AddWarning(CodeDuplicateKey, "duplicate key 1", "maps.primes", 4)

		assert.True(t, d.IsValid())
		require.NoError(t, d.Error())
	})

	t.Run("single", func(t *testing.T) {
		t.Parallel()

		var d Diagnostics
		d.AddError(CodeLiteralType, "cannot use 70000 as uint16", "getters.big", 7)

		err := d.Error()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrLiteralType)
		assert.NotErrorIs(t, err, ErrSyntax)
		assert.Contains(t, err.Error(), "line 7 getters.big: [literal_type] cannot use 70000 as uint16")
	})

	t.Run("multiple kinds", func(t *testing.T) {
		t.Parallel()

		var d Diagnostics
		d.AddError(CodeNameCollision, "foo declared twice", "getters.foo", 3)
		d.AddError(CodeUnknownType, "unknown type u32", "getters.bar", 4)

		err := d.Error()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrNameCollision)
		require.ErrorIs(t, err, ErrUnknownType)
		assert.Contains(t, err.Error(), "foo declared twice")
		assert.Contains(t, err.Error(), "unknown type u32")
	})
}

func TestDiagnostics_Merge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics
	a.AddError(CodeSyntax, "bad", "", 1)
	b.AddWarning(CodeDuplicateKey, "dup", "", 2)
	b.AddInfo("note", "fyi", "", 0)

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.True(t, a.HasErrors())
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"bare", Diagnostic{Message: "oops"}, "oops"},
		{"code", Diagnostic{Code: CodeSyntax, Message: "oops"}, "[syntax] oops"},
		{"line", Diagnostic{Line: 3, Message: "oops"}, "line 3: oops"},
		{"full", Diagnostic{Line: 3, Decl: "maps.m", Code: CodeSyntax, Message: "oops"}, "line 3 maps.m: [syntax] oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDiagnostic_ErrUnknownCode(t *testing.T) {
	t.Parallel()

	err := Diagnostic{Code: "other", Message: "x"}.Err()
	require.Error(t, err)

	for _, kind := range []error{ErrSyntax, ErrLiteralType, ErrNameCollision, ErrUnknownType, ErrInvalidName} {
		assert.False(t, errors.Is(err, kind))
	}
}

func TestSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
