package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// RawExport is the root of a Messenger conversation export
type RawExport struct {
	Title        string           `json:"title"`
	Participants []RawParticipant `json:"participants"`
	Messages     []RawMessage     `json:"messages"`
}

// RawParticipant is an entry of the export's participants array
type RawParticipant struct {
	Name string `json:"name"`
}

// RawMedia is a single attachment reference
type RawMedia struct {
	URI               string `json:"uri"`
	CreationTimestamp int64  `json:"creation_timestamp,omitempty"`
}

// RawMessage is one record of the export's messages array.
// Pointers and nil slices record whether a field was present at all.
type RawMessage struct {
	SenderName  *string    `json:"sender_name"`
	TimestampMs *int64     `json:"timestamp_ms"`
	Content     *string    `json:"content,omitempty"`
	Photos      []RawMedia `json:"photos,omitempty"`
	AudioFiles  []RawMedia `json:"audio_files,omitempty"`
	Gifs        []RawMedia `json:"gifs,omitempty"`
	Videos      []RawMedia `json:"videos,omitempty"`
	Sticker     *RawMedia  `json:"sticker,omitempty"`
	Type        string     `json:"type,omitempty"` // "Generic", "Share", ...
}

// ParseExport parses and validates an export document
func ParseExport(data []byte) (*RawExport, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Source: "export", Err: errors.New("document is empty")}
	}

	var export RawExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, &ParseError{Source: "export", Err: fmt.Errorf("failed to parse export JSON: %w", err)}
	}

	if err := export.Validate(); err != nil {
		return nil, err
	}

	return &export, nil
}

// Validate checks the fields the pipeline cannot default
func (re *RawExport) Validate() error {
	if re.Messages == nil {
		return &ParseError{Source: "export", Key: "messages", Err: errors.New("field is required")}
	}
	for i, p := range re.Participants {
		if p.Name == "" {
			return &ParseError{Source: "export", Key: fmt.Sprintf("participants[%d].name", i), Err: errors.New("field is required")}
		}
	}
	for i := range re.Messages {
		if err := re.Messages[i].validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (rm *RawMessage) validate(index int) error {
	if rm.SenderName == nil {
		return &ParseError{Source: "export", Key: fmt.Sprintf("messages[%d].sender_name", index), Err: errors.New("field is required")}
	}
	if rm.TimestampMs == nil {
		return &ParseError{Source: "export", Key: fmt.Sprintf("messages[%d].timestamp_ms", index), Err: errors.New("field is required")}
	}
	return nil
}

// ParticipantNames returns the raw participant names in export order
func (re *RawExport) ParticipantNames() []string {
	names := make([]string, 0, len(re.Participants))
	for _, p := range re.Participants {
		names = append(names, p.Name)
	}
	return names
}
