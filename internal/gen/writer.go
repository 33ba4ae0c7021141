package gen

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist. Each file is replaced
// atomically, so readers never observe a partial file.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := writeFileAtomic(outputPath, file.Content, filePerm); err != nil {
			return errors.Wrapf(err, "writing file %s", file.Filename)
		}

		if err := removeDebugUnformatted(outputDir, file.Filename); err != nil {
			return errors.Wrapf(err, "removing stale %s", DebugName(file.Filename))
		}
	}

	return nil
}

// IsStale reports whether the file at path differs from content. A missing
// file is stale.
func IsStale(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}

	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}

	return !bytes.Equal(existing, content), nil
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it over targetPath.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}

	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err = tmpFile.Close(); err != nil {
		return err
	}

	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}

	return os.Rename(tmpPath, targetPath)
}
