package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/messenger-export/internal"
	"github.com/spf13/cobra"
)

var (
	checkMediaDir   string
	checkStickerDir string
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// checkOrder is the display order of the per-type counts
var checkOrder = []internal.ContentType{
	internal.ContentText,
	internal.ContentPhoto,
	internal.ContentAudio,
	internal.ContentGif,
	internal.ContentVideo,
	internal.ContentSticker,
}

// maxListedMissing caps the missing attachment list unless --verbose is set
const maxListedMissing = 10

// checkReport is what check found in one export
type checkReport struct {
	Counts     map[internal.ContentType]int
	Missing    []string
	Unresolved map[internal.ContentType]int // attachments with no path, by type
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <export.json>",
	Short: "Check an export file and its attachments",
	Long: `Check an export file before converting it:
  • The file parses and every message has a sender and a timestamp
  • Message counts per content type
  • Attachments that are missing from the media and sticker directories

A malformed export fails the check; missing attachments only produce warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, sectionStyle.Render("🔍 Messenger Export Check"))
		_, _ = fmt.Fprintln(out)

		mediaRoot := settingString(cmd, "media", checkMediaDir, cfg.MediaDir)
		if mediaRoot == "" {
			mediaRoot = internal.DefaultMediaRoot(args[0])
		}
		stickerRoot := settingString(cmd, "stickers", checkStickerDir, cfg.StickerDir)
		if err := internal.CheckDir("media", mediaRoot); err != nil {
			return err
		}
		if err := internal.CheckDir("stickers", stickerRoot); err != nil {
			return err
		}

		locale, err := internal.ParseLocale(cfg.Locale)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(out, infoStyle.Render("Step 1: Parsing export..."))
		raw, err := internal.LoadExport(args[0])
		if err != nil {
			return err
		}
		conv, err := internal.BuildConversation(raw, internal.BuildOptions{
			Locale:      locale,
			MediaRoot:   mediaRoot,
			StickerRoot: stickerRoot,
		}, cfg.Username)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ %q: %d message(s), %d participant(s)", conv.Title, len(conv.Messages), len(conv.Participants))))
		_, _ = fmt.Fprintln(out)

		report := inspectConversation(conv)

		_, _ = fmt.Fprintln(out, infoStyle.Render("Step 2: Counting messages..."))
		for _, ct := range checkOrder {
			_, _ = fmt.Fprintf(out, "   %-8s %d\n", ct, report.Counts[ct])
		}
		_, _ = fmt.Fprintln(out)

		_, _ = fmt.Fprintln(out, infoStyle.Render("Step 3: Checking attachments..."))
		printMissing(out, report)
		_, _ = fmt.Fprintln(out)

		_, _ = fmt.Fprintln(out, sectionStyle.Render("📊 Summary"))
		if len(report.Missing) == 0 && len(report.Unresolved) == 0 {
			_, _ = fmt.Fprintln(out, successStyle.Render("✅ Export is ready to convert"))
		} else {
			_, _ = fmt.Fprintln(out, warningStyle.Render("⚠️  Export can be converted but some attachments will not display"))
		}
		return nil
	},
}

// inspectConversation counts messages and stats every attachment path
func inspectConversation(conv *internal.Conversation) checkReport {
	report := checkReport{
		Counts:     conv.CountByType(),
		Unresolved: make(map[internal.ContentType]int),
	}
	for _, msg := range conv.Messages {
		if !msg.ContentType.IsMedia() {
			continue
		}
		for _, p := range msg.Content {
			if p == "" {
				report.Unresolved[msg.ContentType]++
				continue
			}
			if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
				report.Missing = append(report.Missing, p)
			}
		}
	}
	return report
}

func printMissing(w io.Writer, report checkReport) {
	if len(report.Missing) == 0 {
		_, _ = fmt.Fprintln(w, successStyle.Render("✅ All resolved attachments exist"))
	} else {
		_, _ = fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("⚠️  %d attachment(s) not found", len(report.Missing))))
		for i, p := range report.Missing {
			if i == maxListedMissing && !verbose {
				_, _ = fmt.Fprintf(w, "   ... and %d more (use --verbose to list all)\n", len(report.Missing)-maxListedMissing)
				break
			}
			_, _ = fmt.Fprintf(w, "   %s\n", p)
		}
	}

	for _, ct := range checkOrder {
		n := report.Unresolved[ct]
		switch {
		case n == 0:
		case ct == internal.ContentSticker:
			_, _ = fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("⚠️  %d sticker(s) unresolved (no sticker directory)", n)))
		default:
			_, _ = fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("⚠️  %d %s attachment(s) without a path in the export", n, ct)))
		}
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkMediaDir, "media", "m", "", "Directory holding photos/, audio/, gifs/ and videos/ (default: input file's directory)")
	checkCmd.Flags().StringVarP(&checkStickerDir, "stickers", "s", "", "Directory holding sticker images")
}
