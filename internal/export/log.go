package export

import (
	"fmt"
	"io"

	"github.com/iksnae/messenger-export/internal"
)

// LogExporter writes the plain text log: a date line then "sender: content"
// for every message, with a blank line between messages.
type LogExporter struct{}

// Export exports a conversation to the text log format
func (e *LogExporter) Export(conv *internal.Conversation, w io.Writer) error {
	for i, msg := range conv.Messages {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s: %s\n", msg.Date, msg.Sender, msg.Text()); err != nil {
			return fmt.Errorf("failed to write message %d: %w", i, err)
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *LogExporter) Extension() string {
	return "txt"
}
