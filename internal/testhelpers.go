package internal

// SampleExportJSON is a two message export, newest first, with the
// Latin-1 mis-encoding Messenger applies to non-ASCII text.
const SampleExportJSON = `{
  "participants": [
    {"name": "Jane Doe"},
    {"name": "John Smith"}
  ],
  "messages": [
    {
      "sender_name": "John Smith",
      "timestamp_ms": 1546300900000,
      "photos": [
        {"uri": "messages/inbox/janedoe_abc123/photos/beach.jpg", "creation_timestamp": 1546300899}
      ],
      "type": "Generic"
    },
    {
      "sender_name": "Jane Doe",
      "timestamp_ms": 1546300800000,
      "content": "Salut \u00c3\u00a7a va ?",
      "type": "Generic"
    }
  ],
  "title": "Jane Doe",
  "is_still_participant": true,
  "thread_type": "Regular"
}`

// CreateTestConversation creates a conversation with one message of each common kind
func CreateTestConversation(username string) *Conversation {
	return &Conversation{
		Title:        "Jane Doe",
		Participants: []string{"Jane Doe", "John Smith"},
		Username:     username,
		Messages: []Message{
			{
				Sender:      "Jane Doe",
				ContentType: ContentText,
				Content:     []string{"Hello, see https://example.com/page"},
				Timestamp:   1546300800000,
				Date:        "On January 01 2019 at 00:00:00",
			},
			{
				Sender:      "John Smith",
				ContentType: ContentPhoto,
				Content:     []string{"/media/photos/beach.jpg", "/media/photos/sunset.jpg"},
				Timestamp:   1546300900000,
				Date:        "On January 01 2019 at 00:01:40",
			},
			{
				Sender:         "Jane Doe",
				ContentType:    ContentVideo,
				Content:        []string{"/media/videos/clip.mp4"},
				AdditionalText: "Look at this",
				Timestamp:      1546301000000,
				Date:           "On January 01 2019 at 00:03:20",
			},
		},
	}
}

// CreateTestConversationWithMessages creates a conversation with custom messages
func CreateTestConversationWithMessages(title string, messages []Message) *Conversation {
	return &Conversation{
		Title:        title,
		Participants: []string{"Jane Doe", "John Smith"},
		Messages:     messages,
	}
}

// CreateTestRawMessage creates a text record
func CreateTestRawMessage(sender string, timestampMs int64, content string) RawMessage {
	return RawMessage{
		SenderName:  &sender,
		TimestampMs: &timestampMs,
		Content:     &content,
	}
}

// CreateTestRawMediaMessage creates a record with a single attachment of the given kind
func CreateTestRawMediaMessage(sender string, timestampMs int64, kind ContentType, uri string) RawMessage {
	msg := RawMessage{
		SenderName:  &sender,
		TimestampMs: &timestampMs,
	}
	media := []RawMedia{{URI: uri}}
	switch kind {
	case ContentPhoto:
		msg.Photos = media
	case ContentAudio:
		msg.AudioFiles = media
	case ContentGif:
		msg.Gifs = media
	case ContentVideo:
		msg.Videos = media
	case ContentSticker:
		msg.Sticker = &RawMedia{URI: uri}
	}
	return msg
}
