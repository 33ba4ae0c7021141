package decl

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"litgen/internal/diagnostic"
)

// CurrentVersion is the only supported schema version.
const CurrentVersion = "1"

// LoadFile loads and parses a declaration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read declaration file %s", path)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	f.Source = filepath.Base(path)

	return f, nil
}

// Parse parses YAML data into a File. Unknown top-level keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&f)
	if err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, diagnostic.ErrSyntax) {
			return nil, err
		}

		return nil, errors.Mark(errors.Wrap(err, diagnostic.ErrSyntax.Error()), diagnostic.ErrSyntax)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Maps {
		if f.Maps[i].Style == "" {
			f.Maps[i].Style = StyleInsert
		}
	}
}

// OutputName returns the generated file name: Output when set, otherwise
// the snake-cased source name with a _gen.go suffix.
func (f *File) OutputName() string {
	if f.Output != "" {
		return f.Output
	}

	return DefaultOutput(f.Source)
}

// DefaultOutput derives a generated file name from a declaration file name,
// e.g. "myDecls.yaml" becomes "my_decls_gen.go".
func DefaultOutput(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if source == "" || base == "" {
		base = "litgen"
	}

	return strcase.ToSnake(base) + "_gen.go"
}
