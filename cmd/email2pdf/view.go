// view.go implements the CLI "view" command that prints a parsed
// message summary to stdout without writing any files.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abinashsankar/email2pdf/attach"
	"github.com/abinashsankar/email2pdf/formats"
	"github.com/abinashsankar/email2pdf/message"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Show a summary of the message without converting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			p := formats.Detect(filepath.Base(path), data)
			if p == nil {
				return fmt.Errorf("unsupported file format: %s", filepath.Base(path))
			}
			fmt.Printf("File:        %s (%s)\n", filepath.Base(path), humanSize(len(data)))
			fmt.Printf("Format:      %s\n", p.Name())
			fmt.Println(strings.Repeat("─", 60))

			msgs, err := p.Parse(data)
			if err != nil {
				return err
			}
			for i, m := range msgs {
				if len(msgs) > 1 {
					fmt.Printf("Message %d of %d\n", i+1, len(msgs))
				}
				printMessage(m)
				if i < len(msgs)-1 {
					fmt.Println(strings.Repeat("─", 60))
				}
			}
			return nil
		},
	}
}

// printMessage prints one parsed message's record and attachments.
func printMessage(m *message.Message) {
	fields := []struct {
		label string
		value string
	}{
		{"From", m.Record.From},
		{"To", strings.Join(m.Record.To, ", ")},
		{"Sent On", m.Record.SentOn.String()},
		{"CC", m.Record.CC},
		{"Subject", m.Record.Subject},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Printf("%-13s%s\n", f.label+":", f.value)
		}
	}
	if len(m.Record.Body) > 0 {
		fmt.Printf("%-13s%s\n", "Body:", humanSize(len(m.Record.Body)))
	}
	if len(m.Attachments) == 0 {
		fmt.Println("Attachments: None")
	} else {
		fmt.Printf("Attachments: %d item(s)\n", len(m.Attachments))
		for i, att := range m.Attachments {
			fmt.Printf("  %d. %-36s %8s\n", i+1, attach.Filename(att), humanSize(len(att.Data)))
		}
	}
	for _, p := range m.Problems {
		fmt.Printf("Problem:     %s\n", p)
	}
}
