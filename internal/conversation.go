package internal

import (
	"fmt"
	"strings"
)

// Locale selects the language of dates and renderer labels
type Locale string

const (
	LocaleEN Locale = "EN"
	LocaleFR Locale = "FR"
)

// ParseLocale accepts EN or FR in any case
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToUpper(strings.TrimSpace(s)))
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Validate returns an UnsupportedLocaleError for anything but EN and FR
func (l Locale) Validate() error {
	switch l {
	case LocaleEN, LocaleFR:
		return nil
	default:
		return &UnsupportedLocaleError{Locale: string(l)}
	}
}

// ContentType is the kind of payload a message carries
type ContentType string

const (
	ContentText    ContentType = "text"
	ContentPhoto   ContentType = "photo"
	ContentAudio   ContentType = "audio"
	ContentGif     ContentType = "gif"
	ContentVideo   ContentType = "video"
	ContentSticker ContentType = "sticker"
)

// NoContent is the text of a message with no recognized payload
const NoContent = "NO CONTENT IN THIS MESSAGE"

// IsMedia reports whether Content holds attachment paths
func (c ContentType) IsMedia() bool {
	return c != ContentText
}

// Conversation is a normalized conversation ready for rendering
type Conversation struct {
	Title        string    `json:"title" yaml:"title"`
	Participants []string  `json:"participants" yaml:"participants"`
	Messages     []Message `json:"messages" yaml:"messages"`
	Username     string    `json:"username,omitempty" yaml:"username,omitempty"`
}

// Message is a normalized message
type Message struct {
	Sender         string      `json:"sender" yaml:"sender"`
	ContentType    ContentType `json:"content_type" yaml:"content_type"`
	Content        []string    `json:"content" yaml:"content"`
	AdditionalText string      `json:"additional_text,omitempty" yaml:"additional_text,omitempty"`
	Timestamp      int64       `json:"timestamp_ms" yaml:"timestamp_ms"`
	Date           string      `json:"date" yaml:"date"`
}

// Text returns the message payload as one line: the text itself, or the
// comma separated attachment paths followed by the caption in parentheses.
func (m Message) Text() string {
	text := strings.Join(m.Content, ", ")
	if m.AdditionalText != "" {
		text = fmt.Sprintf("%s (%s)", text, m.AdditionalText)
	}
	return text
}

// IsFrom reports whether the message was sent by name
func (m Message) IsFrom(name string) bool {
	return name != "" && m.Sender == name
}

// CountByType tallies messages per content type
func (c *Conversation) CountByType() map[ContentType]int {
	counts := make(map[ContentType]int)
	for _, msg := range c.Messages {
		counts[msg.ContentType]++
	}
	return counts
}
