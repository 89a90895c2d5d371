package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/iksnae/messenger-export/internal"
)

// MarkdownExporter exports conversations in Markdown format
type MarkdownExporter struct {
	Locale  internal.Locale
	BaseDir string // directory the document is saved in; "" keeps paths as resolved
}

// Export exports a conversation to Markdown format
func (e *MarkdownExporter) Export(conv *internal.Conversation, w io.Writer) error {
	l := labelsFor(e.Locale)

	_, _ = fmt.Fprintf(w, "# %s %s\n\n", l.Heading, escapeMarkdown(conv.Title))
	if len(conv.Participants) > 0 {
		_, _ = fmt.Fprintf(w, "**%s:** %s  \n", l.Participants, escapeMarkdown(strings.Join(conv.Participants, ", ")))
	}
	_, _ = fmt.Fprintf(w, "**%s:** %d\n\n", l.Messages, len(conv.Messages))
	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range conv.Messages {
		sender := msg.Sender
		if msg.IsFrom(conv.Username) {
			sender += " (me)"
		}
		_, _ = fmt.Fprintf(w, "**%s** (%s)\n\n%s\n\n", escapeMarkdown(sender), msg.Date, markdownContent(msg, l, e.BaseDir))

		if i < len(conv.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

func markdownContent(msg internal.Message, l labels, baseDir string) string {
	if msg.ContentType == internal.ContentText {
		return escapeMarkdown(strings.Join(msg.Content, "\n"))
	}

	var lines []string
	for _, p := range mediaLinks(msg, baseDir) {
		if p == "" {
			lines = append(lines, "_"+l.missing(msg.ContentType)+"_")
			continue
		}
		link := filepath.ToSlash(p)
		name := filepath.Base(p)
		switch msg.ContentType {
		case internal.ContentPhoto, internal.ContentGif, internal.ContentSticker:
			lines = append(lines, fmt.Sprintf("![%s](<%s>)", name, link))
		default:
			lines = append(lines, fmt.Sprintf("[%s](<%s>)", name, link))
		}
	}
	if msg.AdditionalText != "" {
		lines = append(lines, escapeMarkdown(msg.AdditionalText))
	}
	return strings.Join(lines, "\n\n")
}

// escapeMarkdown escapes markdown special characters
func escapeMarkdown(text string) string {
	// Basic escaping - preserve code blocks
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// SetBaseDir makes attachment links relative to dir
func (e *MarkdownExporter) SetBaseDir(dir string) {
	e.BaseDir = dir
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
