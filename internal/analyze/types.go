package analyze

import "sort"

// PackageInfo describes the package found in an output directory.
type PackageInfo struct {
	// Path is the import path, e.g. "example.com/app/config".
	Path string
	// Name is the package clause name. Empty when the directory has no Go
	// files yet.
	Name string
	// Dir is the absolute directory of the package.
	Dir string
	// Declared maps each package-level identifier to the base name of the
	// file declaring it.
	Declared map[string]string
}

// Has reports whether the package already declares name.
func (p *PackageInfo) Has(name string) bool {
	if p == nil {
		return false
	}

	_, ok := p.Declared[name]

	return ok
}

// Names returns the declared identifiers in sorted order.
func (p *PackageInfo) Names() []string {
	if p == nil {
		return nil
	}

	names := make([]string, 0, len(p.Declared))
	for name := range p.Declared {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
