package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the dictation assistant",
	Long: `Run starts the input-source watcher and keeps the selected
transcription language in sync with the active keyboard layout until
interrupted.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		printError("startup failed", err)
		return err
	}

	a.Start()
	defer a.Stop()

	fmt.Printf("Scribe v%s running, press Ctrl+C to stop\n", Version)
	fmt.Printf("  Selected language: %s\n", a.Settings().SelectedLanguage())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nShutting down...")
	return nil
}
