package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadExport reads and parses the export file at path
func LoadExport(path string) (*RawExport, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file given")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &PathNotFoundError{Role: "input", Path: path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	export, err := ParseExport(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Source = path
		}
		return nil, err
	}

	LogDebug("Loaded %s: %d message(s), %d participant(s)", path, len(export.Messages), len(export.Participants))
	return export, nil
}

// CheckOutputPath makes sure the directory that will hold path exists
func CheckOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("no output file given")
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &PathNotFoundError{Role: "output", Path: dir}
	}
	return nil
}

// CheckDir returns a PathNotFoundError tagged with role when dir is not a directory
func CheckDir(role, dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &PathNotFoundError{Role: role, Path: dir}
	}
	return nil
}

// DefaultMediaRoot is the directory of the export file, where Messenger
// places the photos/, audio/, gifs/ and videos/ folders.
func DefaultMediaRoot(inputPath string) string {
	return filepath.Dir(inputPath)
}
