package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/messenger-export/internal"
)

// JSONLExporter exports conversations in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a conversation to JSONL format
func (e *JSONLExporter) Export(conv *internal.Conversation, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i, msg := range conv.Messages {
		if err := enc.Encode(msg); err != nil {
			return fmt.Errorf("failed to encode message %d: %w", i, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
