package decl

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"litgen/internal/diagnostic"
)

// assignCheck asks whether Lit may initialize a variable of type Type.
type assignCheck struct {
	Type string
	Lit  Literal
	Role string
	Decl string
	Line int
}

// checkAssignable type-checks every literal against its type with go/types,
// the same rules the compiler applies to the generated code, and reports
// each failure as a literal_type error.
func checkAssignable(res *diagnostic.Diagnostics, checks []assignCheck) {
	if len(checks) == 0 {
		return
	}

	var src strings.Builder

	src.WriteString("package litcheck\n\n")

	// starts[i] is the source line of checks[i]; raw strings may span lines.
	starts := make([]int, len(checks))
	line := 3

	for i, c := range checks {
		starts[i] = line
		fmt.Fprintf(&src, "var _ %s = %s\n", c.Type, c.Lit.Text)
		line += 1 + strings.Count(c.Lit.Text, "\n")
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "litcheck.go", src.String(), parser.SkipObjectResolution)
	if err != nil {
		res.AddError(diagnostic.CodeSyntax, fmt.Sprintf("malformed literal: %v", err), "", 0)
		return
	}

	reported := make(map[int]bool)

	conf := types.Config{
		Error: func(err error) {
			te, ok := err.(types.Error)
			if !ok {
				return
			}

			errLine := fset.Position(te.Pos).Line
			idx := sort.SearchInts(starts, errLine+1) - 1

			if idx < 0 || reported[idx] {
				return
			}

			reported[idx] = true
			c := checks[idx]

			res.AddError(diagnostic.CodeLiteralType,
				fmt.Sprintf("%s %s does not fit %s: %s", c.Role, c.Lit.Text, c.Type, te.Msg), c.Decl, c.Line)
		},
	}

	_, _ = conf.Check("litcheck", fset, []*ast.File{file}, nil)
}
