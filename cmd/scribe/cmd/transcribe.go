package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var transcribeTimeout int

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio.wav>",
	Short: "Transcribe a WAV file",
	Long: `Transcribe runs a single transcription of the given WAV file using
the currently selected language and the configured backend.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().IntVar(&transcribeTimeout, "timeout", 300, "timeout in seconds")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	audioPath := args[0]
	if _, err := os.Stat(audioPath); err != nil {
		printError("cannot read audio file", err)
		return err
	}

	a, err := newApp()
	if err != nil {
		printError("startup failed", err)
		return err
	}
	defer a.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(transcribeTimeout)*time.Second)
	defer cancel()

	text, err := a.TranscribeFile(ctx, audioPath)
	if err != nil {
		printError("transcription failed", err)
		return err
	}

	fmt.Println(text)
	return nil
}
