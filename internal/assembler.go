package internal

import "fmt"

// AssembleConversation wraps already built messages into a Conversation.
// Title and participant names are repaired like every other export string.
func AssembleConversation(title string, participants []string, messages []Message, username string) *Conversation {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, FixText(p))
	}

	return &Conversation{
		Title:        FixText(title),
		Participants: names,
		Messages:     messages,
		Username:     username,
	}
}

// BuildConversation runs the whole pipeline on a parsed export
func BuildConversation(export *RawExport, opts BuildOptions, username string) (*Conversation, error) {
	if export == nil {
		return nil, fmt.Errorf("export is nil")
	}

	LogDebug("Building conversation %q (%s)", export.Title, opts)
	messages, err := NewMessageBuilder(opts).Build(export.Messages)
	if err != nil {
		return nil, err
	}

	return AssembleConversation(export.Title, export.ParticipantNames(), messages, username), nil
}
