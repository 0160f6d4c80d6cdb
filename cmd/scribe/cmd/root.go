package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scribe/internal/app"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Scribe - voice dictation assistant",
	Long: `Scribe keeps the transcription language in sync with the active
keyboard layout and negotiates a speech-to-text backend locale before
running transcription.

Commands:
  run         - watch the input source and auto-sync the language
  transcribe  - transcribe a WAV file with the selected language
  languages   - list languages and their backend availability`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/scribe/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newApp loads configuration and constructs the application
func newApp() (*app.App, error) {
	cfg, err := app.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return app.New(cfg)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
