package cli

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"litgen/internal/analyze"
	"litgen/internal/decl"
	"litgen/internal/gen"
	"litgen/internal/logger"
)

// options are the settings shared by gen and check.
type options struct {
	output         string
	accessor       string
	resolvePackage bool
}

// expansion is the in-memory result for one declaration file.
type expansion struct {
	source string
	dir    string
	file   *gen.GeneratedFile
}

// path returns where the generated file belongs.
func (e *expansion) path() string {
	return filepath.Join(e.dir, e.file.Filename)
}

// expandAll expands every declaration file concurrently. Results keep the
// order of paths; all failures are reported together.
func expandAll(ctx context.Context, paths []string, opts options) ([]*expansion, error) {
	if opts.output != "" && len(paths) > 1 {
		return nil, errors.WithHint(errors.New("--output needs exactly one declaration file"),
			"set output in each declaration file instead")
	}

	results := make([]*expansion, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			results[i], errs[i] = expand(path, opts)

			return nil
		})
	}

	_ = g.Wait()

	var merr *multierror.Error

	for i, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "%s", paths[i]))
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return results, nil
}

// expand loads, validates and renders one declaration file.
func expand(path string, opts options) (*expansion, error) {
	f, err := decl.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if opts.output != "" {
		f.Output = opts.output
	}

	if opts.accessor != "" {
		f.Accessor = opts.accessor
	}

	dir := filepath.Dir(path)

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = dir

	if opts.resolvePackage {
		target, err := analyze.NewAnalyzer(f.OutputName()).LoadPackage(dir)
		if err != nil {
			return nil, errors.WithHint(err, "pass --resolve-package=false and set package in the declaration file")
		}

		logger.Logger.Debugw("resolved target package",
			"source", path, "package", target.Name, "path", target.Path, "declared", target.Names())

		cfg = gen.ConfigForTarget(target)
	}

	file, err := gen.NewGenerator(cfg).Generate(f)
	if err != nil {
		return nil, err
	}

	for _, w := range file.Diagnostics.Warnings {
		logger.Logger.Warnw(w.Message, "source", path, "decl", w.Decl, "line", w.Line, "code", w.Code)
	}

	for _, n := range file.Diagnostics.Infos {
		logger.Logger.Debugw(n.Message, "source", path, "code", n.Code)
	}

	return &expansion{source: path, dir: dir, file: file}, nil
}
