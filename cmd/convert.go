package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/messenger-export/internal"
	"github.com/iksnae/messenger-export/internal/export"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	outputPath string
	username   string
	localeFlag string
	stickerDir string
	mediaDir   string
	outputType string
	writeLog   bool
)

// convertSettings are the resolved inputs of one conversion
type convertSettings struct {
	Input      string
	Output     string
	Username   string
	Locale     internal.Locale
	MediaDir   string
	StickerDir string
	OutputType string
	WriteLog   bool
}

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an export file to HTML",
	Long: `Convert a Messenger export file into an HTML page (or another format with --type).

Attachments are looked up in photos/, audio/, gifs/ and videos/ under the media
directory, which defaults to the directory of the input file. Stickers are only
resolved when a sticker directory is given.`,
	Example: `  messenger-export convert -i message_1.json -o chat.html -n "Jane Doe"
  messenger-export convert -i message_1.json -o chat.html -f FR -s ./stickers --log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveConvertSettings(cmd)
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(s.OutputType, s.Locale)
		if err != nil {
			return err
		}
		if r, ok := exporter.(export.MediaRelocator); ok {
			r.SetBaseDir(filepath.Dir(s.Output))
		}

		var raw *internal.RawExport
		var conv *internal.Conversation

		ctx := context.Background()
		steps := []internal.ProgressStep{
			{
				Message: "Loading export",
				Fn: func() error {
					var loadErr error
					raw, loadErr = internal.LoadExport(s.Input)
					return loadErr
				},
			},
			{
				Message: "Building conversation",
				Fn: func() error {
					var buildErr error
					conv, buildErr = internal.BuildConversation(raw, s.buildOptions(), s.Username)
					return buildErr
				},
			},
			{
				Message: fmt.Sprintf("Writing %s", s.Output),
				Fn: func() error {
					return writeConversation(conv, exporter, s.OutputType, s.Output)
				},
			},
		}
		if s.WriteLog {
			steps = append(steps, internal.ProgressStep{
				Message: fmt.Sprintf("Writing text log %s", logPath(s.Output)),
				Fn: func() error {
					return writeConversation(conv, &export.LogExporter{}, "txt", logPath(s.Output))
				},
			})
		}

		if err := internal.ShowProgressWithSteps(ctx, steps); err != nil {
			return err
		}

		if s.StickerDir == "" {
			if n := conv.CountByType()[internal.ContentSticker]; n > 0 {
				internal.PrintWarning(fmt.Sprintf("%d sticker(s) left unresolved, pass -s/--stickers to include them", n))
			}
		}

		internal.PrintSuccess(fmt.Sprintf("Converted %d message(s) to %s", len(conv.Messages), s.Output))
		if s.WriteLog {
			internal.PrintInfo(fmt.Sprintf("Text log written to %s", logPath(s.Output)))
		}
		return nil
	},
}

// resolveConvertSettings merges flags over the loaded config and checks every path
func resolveConvertSettings(cmd *cobra.Command) (*convertSettings, error) {
	s := &convertSettings{
		Input:      inputPath,
		Output:     outputPath,
		Username:   settingString(cmd, "username", username, cfg.Username),
		MediaDir:   settingString(cmd, "media", mediaDir, cfg.MediaDir),
		StickerDir: settingString(cmd, "stickers", stickerDir, cfg.StickerDir),
		OutputType: strings.ToLower(settingString(cmd, "type", outputType, cfg.OutputType)),
		WriteLog:   cfg.WriteLog,
	}
	if cmd.Flags().Changed("log") {
		s.WriteLog = writeLog
	}

	locale, err := internal.ParseLocale(settingString(cmd, "format", localeFlag, cfg.Locale))
	if err != nil {
		return nil, err
	}
	s.Locale = locale

	if !internal.IsSupportedOutputType(s.OutputType) {
		return nil, fmt.Errorf("unsupported output type %q (supported: %s)", s.OutputType, strings.Join(internal.SupportedOutputTypes, ", "))
	}

	if _, err := os.Stat(s.Input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &internal.PathNotFoundError{Role: "input", Path: s.Input}
		}
		return nil, fmt.Errorf("failed to access input %s: %w", s.Input, err)
	}
	if err := internal.CheckOutputPath(s.Output); err != nil {
		return nil, err
	}
	if s.MediaDir == "" {
		s.MediaDir = internal.DefaultMediaRoot(s.Input)
	} else if err := internal.CheckDir("media", s.MediaDir); err != nil {
		return nil, err
	}
	if err := internal.CheckDir("stickers", s.StickerDir); err != nil {
		return nil, err
	}

	internal.LogDebug("Convert settings: %+v", *s)
	return s, nil
}

func (s *convertSettings) buildOptions() internal.BuildOptions {
	return internal.BuildOptions{
		Locale:      s.Locale,
		MediaRoot:   s.MediaDir,
		StickerRoot: s.StickerDir,
	}
}

// writeConversation renders conv into path, removing the file again on failure
func writeConversation(conv *internal.Conversation, exporter export.Exporter, format, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}

	if err := exporter.Export(conv, file); err != nil {
		_ = file.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			internal.LogError("Failed to remove partial output %s: %v", path, rmErr)
		}
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}
	return nil
}

// logPath places the text log next to the output: chat.html gives chat.txt
func logPath(output string) string {
	stem := strings.TrimSuffix(output, filepath.Ext(output))
	p := stem + ".txt"
	if p == output {
		p = stem + ".log.txt"
	}
	return p
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Messenger export file (message_1.json)")
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file; its directory must exist")
	convertCmd.Flags().StringVarP(&username, "username", "n", "", "Your name as it appears in the export, to highlight your messages")
	convertCmd.Flags().StringVarP(&localeFlag, "format", "f", "", "Date and label language: EN or FR (default EN)")
	convertCmd.Flags().StringVarP(&stickerDir, "stickers", "s", "", "Directory holding sticker images")
	convertCmd.Flags().StringVarP(&mediaDir, "media", "m", "", "Directory holding photos/, audio/, gifs/ and videos/ (default: input file's directory)")
	convertCmd.Flags().StringVarP(&outputType, "type", "t", "", "Output type: html, txt, md, json, yaml, jsonl (default html)")
	convertCmd.Flags().BoolVar(&writeLog, "log", false, "Also write a plain text log next to the output")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}
