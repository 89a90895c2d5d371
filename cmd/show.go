package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/messenger-export/internal"
	"github.com/spf13/cobra"
)

var (
	limit        int
	showLocale   string
	showUsername string
)

var (
	// Styles for show command
	conversationHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	conversationMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	ownMessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	otherMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	mediaKindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <export.json>",
	Short: "Show a conversation in the terminal",
	Long: `Display the repaired, chronologically ordered messages of an export file.

Attachments are listed by path; use convert to produce a page that displays them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locale, err := internal.ParseLocale(settingString(cmd, "format", showLocale, cfg.Locale))
		if err != nil {
			return err
		}

		conv, err := loadConversation(args[0], locale, settingString(cmd, "username", showUsername, cfg.Username))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		displayConversationHeader(out, conv)

		messagesToShow := conv.Messages
		total := len(messagesToShow)
		if limit > 0 && limit < total {
			messagesToShow = messagesToShow[:limit]
		}

		for i, msg := range messagesToShow {
			displayMessage(out, i+1, total, msg, msg.IsFrom(conv.Username))
		}

		// Show remaining count if limit was applied
		if limit > 0 && limit < total {
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Italic(true).
				Render(fmt.Sprintf("... (%d more message(s))", total-limit)))
		}

		return nil
	},
}

// loadConversation runs the pipeline for the read-only commands
func loadConversation(path string, locale internal.Locale, user string) (*internal.Conversation, error) {
	raw, err := internal.LoadExport(path)
	if err != nil {
		return nil, err
	}

	mediaRoot := cfg.MediaDir
	if mediaRoot == "" {
		mediaRoot = internal.DefaultMediaRoot(path)
	}
	opts := internal.BuildOptions{
		Locale:      locale,
		MediaRoot:   mediaRoot,
		StickerRoot: cfg.StickerDir,
	}
	return internal.BuildConversation(raw, opts, user)
}

func displayConversationHeader(w io.Writer, conv *internal.Conversation) {
	if conv == nil {
		return
	}
	_, _ = fmt.Fprintln(w, conversationHeaderStyle.Render(fmt.Sprintf("💬 %s", conv.Title)))

	metaParts := []string{fmt.Sprintf("Messages: %d", len(conv.Messages))}
	if len(conv.Participants) > 0 {
		metaParts = append(metaParts, fmt.Sprintf("Participants: %s", strings.Join(conv.Participants, ", ")))
	}
	_, _ = fmt.Fprintln(w, conversationMetaStyle.Render(strings.Join(metaParts, " • ")))
	_, _ = fmt.Fprintln(w)
}

func displayMessage(w io.Writer, index, total int, msg internal.Message, own bool) {
	senderStyle := otherMessageStyle
	if own {
		senderStyle = ownMessageStyle
	}

	header := senderStyle.Render(msg.Sender) + " " + dateStyle.Render(fmt.Sprintf("[%d/%d] %s", index, total, msg.Date))
	if msg.ContentType.IsMedia() {
		header += " " + mediaKindStyle.Render(string(msg.ContentType))
	}
	_, _ = fmt.Fprintln(w, header)

	content := strings.TrimSpace(msg.Text())
	if content == "" {
		_, _ = fmt.Fprintln(w, messageContentStyle.Foreground(lipgloss.Color("240")).Render("(unresolved attachment)"))
	} else {
		_, _ = fmt.Fprintln(w, messageContentStyle.Render(wrapText(content, 80)))
	}
	_, _ = fmt.Fprintln(w)
}

func wrapText(text string, width int) string {
	lines := strings.Split(text, "\n")
	var wrapped []string

	for _, line := range lines {
		if len([]rune(line)) <= width {
			wrapped = append(wrapped, line)
			continue
		}

		// Wrap long lines
		words := strings.Fields(line)
		currentLine := ""
		for _, word := range words {
			if len([]rune(currentLine))+len([]rune(word))+1 > width {
				if currentLine != "" {
					wrapped = append(wrapped, currentLine)
					currentLine = word
				} else {
					wrapped = append(wrapped, word)
					currentLine = ""
				}
			} else {
				if currentLine == "" {
					currentLine = word
				} else {
					currentLine += " " + word
				}
			}
		}
		if currentLine != "" {
			wrapped = append(wrapped, currentLine)
		}
	}

	return strings.Join(wrapped, "\n")
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of messages to show")
	showCmd.Flags().StringVarP(&showLocale, "format", "f", "", "Date language: EN or FR (default EN)")
	showCmd.Flags().StringVarP(&showUsername, "username", "u", "", "Your name as it appears in the export")
}
