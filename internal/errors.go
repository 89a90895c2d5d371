package internal

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrUnsupportedLocale is matched by every UnsupportedLocaleError
var ErrUnsupportedLocale = errors.New("unsupported locale")

// UnsupportedLocaleError is returned when a locale other than EN or FR is requested
type UnsupportedLocaleError struct {
	Locale string
}

func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("unsupported locale %q (supported: EN, FR)", e.Locale)
}

func (e *UnsupportedLocaleError) Is(target error) bool {
	return target == ErrUnsupportedLocale
}

// EncodingRepairError reports text that could not be recovered as UTF-8.
// Callers usually keep the original text.
type EncodingRepairError struct {
	Text string
	Err  error
}

func (e *EncodingRepairError) Error() string {
	return fmt.Sprintf("encoding repair failed for %q: %v", e.Text, e.Err)
}

func (e *EncodingRepairError) Unwrap() error {
	return e.Err
}

// ParseError represents errors parsing the export document
type ParseError struct {
	Source string // file path or "export"
	Key    string // offending record, e.g. messages[3].sender_name
	Err    error
}

func (e *ParseError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("parse error [%s]: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PathNotFoundError is returned when a path given on the command line does not exist
type PathNotFoundError struct {
	Role string // "input", "output", "config", "media", "stickers"
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s path not found: %s", e.Role, e.Path)
}

func (e *PathNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
