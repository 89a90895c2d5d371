package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/messenger-export/internal"
)

// Exporter renders a conversation in one output format
type Exporter interface {
	Export(conv *internal.Conversation, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format.
// The locale picks the labels of the human readable formats.
func NewExporter(format string, locale internal.Locale) (Exporter, error) {
	if err := locale.Validate(); err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "html":
		return NewHTMLExporter(locale)
	case "txt", "log":
		return &LogExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{Locale: locale}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(internal.SupportedOutputTypes, ", "))
	}
}
