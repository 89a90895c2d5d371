package internal

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestUnsupportedLocaleError(t *testing.T) {
	err := &UnsupportedLocaleError{Locale: "DE"}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "DE") {
		t.Errorf("UnsupportedLocaleError.Error() should contain locale, got: %q", errorMsg)
	}

	if !errors.Is(err, ErrUnsupportedLocale) {
		t.Error("UnsupportedLocaleError should match ErrUnsupportedLocale")
	}

	wrapped := errors.Join(errors.New("build failed"), err)
	if !errors.Is(wrapped, ErrUnsupportedLocale) {
		t.Error("wrapped UnsupportedLocaleError should still match ErrUnsupportedLocale")
	}
}

func TestEncodingRepairError(t *testing.T) {
	originalErr := errors.New("invalid utf-8")
	err := &EncodingRepairError{
		Text: "café",
		Err:  originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "encoding repair failed") {
		t.Errorf("EncodingRepairError.Error() should contain 'encoding repair failed', got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("EncodingRepairError.Unwrap() should return original error")
	}
}

func TestParseError(t *testing.T) {
	originalErr := errors.New("field is required")
	err := &ParseError{
		Source: "message_1.json",
		Key:    "messages[2].sender_name",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "parse error") {
		t.Errorf("ParseError.Error() should contain 'parse error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "messages[2].sender_name") {
		t.Errorf("ParseError.Error() should contain key, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("ParseError.Unwrap() should return original error")
	}

	noKey := &ParseError{Source: "export", Err: originalErr}
	if strings.Contains(noKey.Error(), "  ") {
		t.Errorf("ParseError.Error() without key should not contain double spaces, got: %q", noKey.Error())
	}
}

func TestPathNotFoundError(t *testing.T) {
	err := &PathNotFoundError{Role: "output", Path: "/missing/dir/out.html"}

	errorMsg := err.Error()
	if !strings.HasPrefix(errorMsg, "output path not found") {
		t.Errorf("PathNotFoundError.Error() should start with role, got: %q", errorMsg)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("PathNotFoundError should match fs.ErrNotExist")
	}

	var target *PathNotFoundError
	if !errors.As(err, &target) || target.Role != "output" {
		t.Error("errors.As should recover PathNotFoundError with its role")
	}
}

func TestExportError(t *testing.T) {
	originalErr := errors.New("write failed")
	err := &ExportError{
		Format: "html",
		Path:   "/output/conversation.html",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "export error") {
		t.Errorf("ExportError.Error() should contain 'export error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "html") {
		t.Errorf("ExportError.Error() should contain format, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("ExportError.Unwrap() should return original error")
	}
}
