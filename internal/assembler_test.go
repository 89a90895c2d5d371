package internal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleConversation(t *testing.T) {
	messages := []Message{{Sender: "A", ContentType: ContentText, Content: []string{"x"}}}

	conv := AssembleConversation(
		misencode("Soirée d'été"),
		[]string{misencode("Zoë"), "Plain Name", "Déjà correct"},
		messages,
		"Plain Name",
	)

	assert.Equal(t, "Soirée d'été", conv.Title)
	assert.Equal(t, []string{"Zoë", "Plain Name", "Déjà correct"}, conv.Participants)
	assert.Equal(t, messages, conv.Messages)
	assert.Equal(t, "Plain Name", conv.Username)
}

func TestBuildConversation_RoundTrip(t *testing.T) {
	export, err := ParseExport([]byte(SampleExportJSON))
	require.NoError(t, err)

	conv, err := BuildConversation(export, BuildOptions{Locale: LocaleEN, MediaRoot: "/exports/janedoe"}, "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, FixText(export.Title), conv.Title)
	assert.Equal(t, []string{"Jane Doe", "John Smith"}, conv.Participants)
	assert.Equal(t, "Jane Doe", conv.Username)

	require.Len(t, conv.Messages, 2)
	first, second := conv.Messages[0], conv.Messages[1]
	assert.Less(t, first.Timestamp, second.Timestamp)

	assert.Equal(t, "Jane Doe", first.Sender)
	assert.Equal(t, ContentText, first.ContentType)
	assert.Equal(t, []string{"Salut ça va ?"}, first.Content)

	assert.Equal(t, "John Smith", second.Sender)
	assert.Equal(t, ContentPhoto, second.ContentType)
	assert.Equal(t, []string{filepath.Join("/exports/janedoe", "photos", "beach.jpg")}, second.Content)

	counts := conv.CountByType()
	assert.Equal(t, 1, counts[ContentText])
	assert.Equal(t, 1, counts[ContentPhoto])
}

func TestBuildConversation_Errors(t *testing.T) {
	_, err := BuildConversation(nil, BuildOptions{Locale: LocaleEN}, "")
	assert.Error(t, err)

	export, err := ParseExport([]byte(SampleExportJSON))
	require.NoError(t, err)

	_, err = BuildConversation(export, BuildOptions{Locale: "XX"}, "")
	assert.True(t, errors.Is(err, ErrUnsupportedLocale))
}
