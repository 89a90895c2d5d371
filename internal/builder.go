package internal

import (
	"fmt"
)

// BuildOptions holds the already-validated inputs of a build
type BuildOptions struct {
	Locale      Locale
	MediaRoot   string // directory holding photos/, audio/, gifs/, videos/
	StickerRoot string // optional; stickers stay unresolved without it
}

// MessageBuilder converts raw export records into normalized messages
type MessageBuilder struct {
	opts BuildOptions
}

// NewMessageBuilder creates a new MessageBuilder
func NewMessageBuilder(opts BuildOptions) *MessageBuilder {
	return &MessageBuilder{opts: opts}
}

// Build normalizes every record and returns them oldest first.
// The export lists messages newest first.
func (b *MessageBuilder) Build(raw []RawMessage) ([]Message, error) {
	if err := b.opts.Locale.Validate(); err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		msg, err := b.buildMessage(i, &raw[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	LogDebug("Built %d message(s)", len(messages))
	return messages, nil
}

func (b *MessageBuilder) buildMessage(index int, rm *RawMessage) (Message, error) {
	if err := rm.validate(index); err != nil {
		return Message{}, err
	}

	date, err := FormatDate(*rm.TimestampMs, b.opts.Locale)
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		Sender:    FixText(*rm.SenderName),
		Timestamp: *rm.TimestampMs,
		Date:      date,
	}

	// An empty media array counts as absent.
	switch {
	case rm.Content != nil && len(rm.Videos) == 0:
		msg.ContentType = ContentText
		msg.Content = []string{FixText(*rm.Content)}
	case len(rm.Photos) > 0:
		msg.ContentType = ContentPhoto
		msg.Content = b.resolveAll(rm.Photos, ContentPhoto)
	case len(rm.AudioFiles) > 0:
		msg.ContentType = ContentAudio
		msg.Content = b.resolveAll(rm.AudioFiles, ContentAudio)
	case len(rm.Gifs) > 0:
		msg.ContentType = ContentGif
		msg.Content = b.resolveAll(rm.Gifs, ContentGif)
	case len(rm.Videos) > 0:
		msg.ContentType = ContentVideo
		msg.Content = b.resolveAll(rm.Videos, ContentVideo)
		if rm.Content != nil {
			msg.AdditionalText = FixText(*rm.Content)
		}
	case rm.Sticker != nil:
		msg.ContentType = ContentSticker
		msg.Content = []string{b.resolve(*rm.Sticker, ContentSticker)}
	default:
		msg.ContentType = ContentText
		msg.Content = []string{NoContent}
	}

	return msg, nil
}

func (b *MessageBuilder) resolveAll(media []RawMedia, category ContentType) []string {
	paths := make([]string, 0, len(media))
	for _, m := range media {
		paths = append(paths, b.resolve(m, category))
	}
	return paths
}

func (b *MessageBuilder) resolve(media RawMedia, category ContentType) string {
	path := ResolveAttachment(FixText(media.URI), category, b.opts.MediaRoot, b.opts.StickerRoot)
	if path == "" {
		LogDebug("Unresolved %s attachment %q", category, media.URI)
	}
	return path
}

// String describes the options for log lines
func (o BuildOptions) String() string {
	return fmt.Sprintf("locale=%s media=%q stickers=%q", o.Locale, o.MediaRoot, o.StickerRoot)
}
