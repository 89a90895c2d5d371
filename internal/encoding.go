package internal

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	errNotLatin1      = errors.New("text contains characters outside ISO-8859-1")
	errInvalidUTF8    = errors.New("recovered bytes are not valid UTF-8")
	errInvalidEncoded = errors.New("text is not valid UTF-8")
)

// RepairText undoes the export's double encoding: the UTF-8 bytes of the
// original text were read back as ISO-8859-1, one code point per byte.
func RepairText(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", &EncodingRepairError{Text: s, Err: errInvalidEncoded}
	}
	for i, r := range s {
		if r > 0xFF {
			return "", &EncodingRepairError{Text: s, Err: fmt.Errorf("%w: %U at byte %d", errNotLatin1, r, i)}
		}
	}

	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", &EncodingRepairError{Text: s, Err: err}
	}
	if !utf8.ValidString(raw) {
		return "", &EncodingRepairError{Text: s, Err: errInvalidUTF8}
	}
	return raw, nil
}

// FixText repairs s, keeping it unchanged when it was not mis-encoded
func FixText(s string) string {
	fixed, err := RepairText(s)
	if err != nil {
		LogDebug("Keeping text as-is: %v", err)
		return s
	}
	return fixed
}
