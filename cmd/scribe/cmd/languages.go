package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scribe/internal/language"
	"scribe/internal/stt"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List languages and backend availability",
	Long: `Languages lists every language of the catalog with its backend
locale and whether the configured backend can transcribe it.`,
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		printError("startup failed", err)
		return err
	}
	defer a.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	selected := a.Settings().SelectedLanguage()

	fmt.Printf("%-6s %-22s %-8s %s\n", "CODE", "NAME", "LOCALE", "STATUS")
	for _, lang := range language.List() {
		locale, availability, err := a.LocaleStatus(ctx, lang.Code)
		if err != nil && errors.Is(err, stt.ErrUnsupportedRuntime) {
			return fmt.Errorf("backend not available: %w", err)
		}
		if locale == "" {
			locale = language.BackendLocale(lang.Code)
		}
		marker := " "
		if lang.Code == selected {
			marker = "*"
		}
		fmt.Printf("%s%-5s %-22s %-8s %s\n", marker, lang.Code, lang.Name, locale, availability.String())
	}
	fmt.Println("\n* currently selected language")
	return nil
}
