package analyze

import (
	"go/ast"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages. Types are not
// needed: a stale generated file must not prevent loading.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// Analyzer loads the package of an output directory.
type Analyzer struct {
	// skip holds base names of files whose declarations are ignored,
	// typically the file about to be regenerated.
	skip map[string]bool
}

// NewAnalyzer creates a new Analyzer that ignores declarations in the
// given files.
func NewAnalyzer(skipFiles ...string) *Analyzer {
	skip := make(map[string]bool, len(skipFiles))
	for _, f := range skipFiles {
		skip[filepath.Base(f)] = true
	}

	return &Analyzer{skip: skip}
}

// LoadPackage loads the package in dir. A directory without Go files still
// yields its import path, with an empty Name.
func (a *Analyzer) LoadPackage(dir string) (*PackageInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", dir)
	}

	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  abs,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package in %s", dir)
	}

	if len(pkgs) != 1 {
		return nil, errors.Newf("expected one package in %s, found %d", dir, len(pkgs))
	}

	pkg := pkgs[0]
	if pkg.PkgPath == "" {
		return nil, errors.Wrapf(packageErrors(pkg), "package errors in %s", dir)
	}

	info := &PackageInfo{
		Path:     pkg.PkgPath,
		Name:     pkg.Name,
		Dir:      abs,
		Declared: make(map[string]string),
	}

	for _, file := range pkg.Syntax {
		name := filepath.Base(pkg.Fset.Position(file.Package).Filename)
		if a.skip[name] {
			continue
		}

		a.collectDecls(file, name, info)
	}

	if info.Name == "" && len(pkg.GoFiles) > 0 {
		return nil, errors.Wrapf(packageErrors(pkg), "package errors in %s", dir)
	}

	return info, nil
}

// collectDecls records the package-level identifiers declared in file.
func (a *Analyzer) collectDecls(file *ast.File, filename string, info *PackageInfo) {
	add := func(id *ast.Ident) {
		if id == nil || id.Name == "_" {
			return
		}

		if _, ok := info.Declared[id.Name]; !ok {
			info.Declared[id.Name] = filename
		}
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			// Methods live in their receiver's scope.
			if d.Recv == nil && d.Name.Name != "init" {
				add(d.Name)
			}

		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					add(s.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						add(n)
					}
				}
			}
		}
	}
}

func packageErrors(pkg *packages.Package) error {
	var errs *multierror.Error
	for _, e := range pkg.Errors {
		errs = multierror.Append(errs, e)
	}

	if errs == nil {
		return errors.New("no package found")
	}

	return errs.ErrorOrNil()
}
