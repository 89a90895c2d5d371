package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ExportFixture describes a Messenger export file. Messages are listed
// newest first, as Messenger writes them.
type ExportFixture struct {
	Title        string
	Participants []string
	Messages     []map[string]interface{}
}

// TextMessage builds a text record
func TextMessage(sender string, timestampMs int64, content string) map[string]interface{} {
	return map[string]interface{}{
		"sender_name":  sender,
		"timestamp_ms": timestampMs,
		"content":      content,
		"type":         "Generic",
	}
}

// MediaMessage builds a record whose field ("photos", "audio_files", "gifs"
// or "videos") lists one entry per uri
func MediaMessage(sender string, timestampMs int64, field string, uris ...string) map[string]interface{} {
	media := make([]map[string]interface{}, 0, len(uris))
	for _, uri := range uris {
		media = append(media, map[string]interface{}{"uri": uri, "creation_timestamp": timestampMs / 1000})
	}
	return map[string]interface{}{
		"sender_name":  sender,
		"timestamp_ms": timestampMs,
		field:          media,
		"type":         "Generic",
	}
}

// StickerMessage builds a sticker record
func StickerMessage(sender string, timestampMs int64, uri string) map[string]interface{} {
	return map[string]interface{}{
		"sender_name":  sender,
		"timestamp_ms": timestampMs,
		"sticker":      map[string]interface{}{"uri": uri},
		"type":         "Generic",
	}
}

// Misencode reproduces Messenger's mis-encoding: every UTF-8 byte of s
// becomes the Latin-1 character with the same value.
func Misencode(s string) string {
	runes := make([]rune, 0, len(s))
	for _, b := range []byte(s) {
		runes = append(runes, rune(b))
	}
	return string(runes)
}

// WriteExportFixture writes the export as message_1.json under dir and returns its path
func WriteExportFixture(t *testing.T, dir string, fixture ExportFixture) string {
	t.Helper()

	participants := make([]map[string]string, 0, len(fixture.Participants))
	for _, name := range fixture.Participants {
		participants = append(participants, map[string]string{"name": name})
	}
	messages := fixture.Messages
	if messages == nil {
		messages = []map[string]interface{}{}
	}

	doc := map[string]interface{}{
		"title":                fixture.Title,
		"participants":         participants,
		"messages":             messages,
		"is_still_participant": true,
		"thread_type":          "Regular",
	}

	path := filepath.Join(dir, "message_1.json")
	if err := os.WriteFile(path, JSONMarshal(t, doc), 0644); err != nil {
		t.Fatalf("Failed to write export fixture: %v", err)
	}
	return path
}

// CreateMediaFixture creates an empty attachment file at root/category/name
func CreateMediaFixture(t *testing.T, root, category, name string) string {
	t.Helper()
	dir := filepath.Join(root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create media directory: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to write media fixture: %v", err)
	}
	return path
}

// SampleExport is a small conversation with one message of each common kind
func SampleExport() ExportFixture {
	return ExportFixture{
		Title:        Misencode("Amélie Poulain"),
		Participants: []string{Misencode("Amélie Poulain"), "Nino Quincampoix"},
		Messages: []map[string]interface{}{
			MediaMessage("Nino Quincampoix", 1546301000000, "videos", "messages/inbox/amelie_1/videos/clip.mp4"),
			MediaMessage(Misencode("Amélie Poulain"), 1546300900000, "photos", "messages/inbox/amelie_1/photos/beach.jpg"),
			TextMessage(Misencode("Amélie Poulain"), 1546300800000, Misencode("Déjà vu? see https://example.com")),
		},
	}
}
