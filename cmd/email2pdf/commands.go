// commands.go defines the convert, extract, and batch subcommands.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abinashsankar/email2pdf/render"
	"github.com/abinashsankar/email2pdf/report"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file>",
		Short: "Extract attachments and render a PDF summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return processFile(args[0], outDir)
		},
	}
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract attachments only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := parseFile(args[0])
			if err != nil {
				return err
			}
			total := 0
			for _, m := range msgs {
				logProblems(m, args[0])
				total += len(saveAttachments(m, outDir))
			}
			if total == 0 {
				fmt.Println("No attachments to extract.")
			}
			return nil
		},
	}
}

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <dir>",
		Short: "Convert every supported file in a directory and write an index.xlsx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			var rows []report.Row
			for _, e := range entries {
				if e.IsDir() || !supportedExt(e.Name()) {
					continue
				}
				path := filepath.Join(args[0], e.Name())
				base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
				dir := filepath.Join(outDir, base)

				msgs, err := parseFile(path)
				if err != nil {
					slog.Warn("skipping file", "file", path, "err", err)
					continue
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
				for i, m := range msgs {
					logProblems(m, path)
					names := saveAttachments(m, dir)
					pdfPath := filepath.Join(dir, pdfName(path, i, len(msgs)))
					if err := render.RenderFile(pdfPath, m.Record, names); err != nil {
						slog.Warn("skipping pdf", "file", pdfPath, "err", err)
						continue
					}
					rows = append(rows, report.NewRow(e.Name(), m, len(names)))
				}
			}
			if len(rows) == 0 {
				fmt.Println("No supported files found.")
				return nil
			}
			sort.Slice(rows, func(i, j int) bool { return rows[i].File < rows[j].File })

			indexPath := filepath.Join(outDir, "index.xlsx")
			if err := report.Write(indexPath, rows); err != nil {
				return err
			}
			slog.Info("wrote index", "file", indexPath, "messages", len(rows))
			return nil
		},
	}
}

// supportedExt reports whether the registry could plausibly handle the
// file, judged by extension alone so batch mode skips unrelated files
// without reading them twice.
func supportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".msg", ".eml", ".mbox":
		return true
	}
	return false
}
