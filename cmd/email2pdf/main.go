// Email2pdf converts Outlook .msg files, .eml messages, and mbox
// archives into a PDF summary plus extracted attachment files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	// Register the supported input formats.
	_ "github.com/abinashsankar/email2pdf/formats/eml"
	_ "github.com/abinashsankar/email2pdf/formats/mbox"
	_ "github.com/abinashsankar/email2pdf/formats/msg"
)

// version is the application version, shown by the version command.
const version = "1.0.0"

var (
	outDir  string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "email2pdf",
		Short: "Convert email files (.msg, .eml, .mbox) to PDF and extract attachments",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "attachments", "output directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		convertCmd(),
		extractCmd(),
		viewCmd(),
		batchCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(version)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
