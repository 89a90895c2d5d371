package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/iksnae/messenger-export/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// cfg holds the layered settings; flags given on the command line win over it
var cfg = internal.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "messenger-export",
	Short: "Convert Messenger conversation exports to HTML",
	Long: `Convert a Facebook Messenger conversation export (message_1.json) into a
readable HTML page, with an optional plain text log.

Messenger writes non-ASCII text in a broken encoding and lists messages newest
first. messenger-export repairs the text, puts the messages in chronological
order, formats dates in English or French and points photos, audio files,
GIFs, videos and stickers at the files on disk.

Quick Start:
  messenger-export convert -i message_1.json -o chat.html -n "Jane Doe"
  messenger-export convert -i message_1.json -o chat.html -f FR --log
  messenger-export show message_1.json --limit 20
  messenger-export check message_1.json

Settings can also come from .messenger-export.yml or MESSENGER_EXPORT_*
environment variables; command line flags take precedence.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := internal.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if verbose {
			internal.SetVerbose(true)
			return nil
		}
		level, err := internal.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		internal.SetLogLevel(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(describeError(err))
		os.Exit(1)
	}
}

// describeError turns missing paths into a hint naming the flag to fix
func describeError(err error) string {
	var notFound *internal.PathNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Sprintf("Error: %v", err)
	}

	switch notFound.Role {
	case "input":
		return fmt.Sprintf("Error: input file %s does not exist (check -i/--input)", notFound.Path)
	case "output":
		return fmt.Sprintf("Error: output directory %s does not exist (create it or change -o/--output)", notFound.Path)
	case "media":
		return fmt.Sprintf("Error: media directory %s does not exist (check -m/--media)", notFound.Path)
	case "stickers":
		return fmt.Sprintf("Error: sticker directory %s does not exist (check -s/--stickers)", notFound.Path)
	case "config":
		return fmt.Sprintf("Error: config file %s does not exist (check --config)", notFound.Path)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// settingString returns the flag value when it was given, the config value otherwise
func settingString(cmd *cobra.Command, flag, flagValue, configValue string) string {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	return configValue
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default .messenger-export.yml in the working directory)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
