package gen

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// DebugName returns the sidecar file name that receives unformatted output
// when filename cannot be formatted. It stays a .go file so editors can
// highlight it.
func DebugName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// writeDebugUnformatted writes unformatted code next to the intended
// output. This is best-effort and should never make generation fail harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, DebugName(filename)), content, filePerm)
}

// removeDebugUnformatted deletes a sidecar left by an earlier failed run.
func removeDebugUnformatted(outDir, filename string) error {
	err := os.Remove(filepath.Join(outDir, DebugName(filename)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
