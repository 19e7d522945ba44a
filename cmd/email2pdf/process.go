// process.go holds the shared pipeline: detect the format, parse the
// file, materialize attachments, and render the PDF summary.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/abinashsankar/email2pdf/attach"
	"github.com/abinashsankar/email2pdf/formats"
	"github.com/abinashsankar/email2pdf/message"
	"github.com/abinashsankar/email2pdf/render"
)

// parseFile reads path, auto-detects its format, and returns the parsed
// messages (archives yield several).
func parseFile(path string) ([]*message.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p := formats.Detect(filepath.Base(path), data)
	if p == nil {
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Base(path))
	}
	slog.Debug("detected format", "file", path, "format", p.Name())
	msgs, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return msgs, nil
}

// saveAttachments materializes every attachment of m into dir and returns
// the written filenames in order. Persistence failures are logged and
// recorded as problems; the rest of the attachments still get written.
func saveAttachments(m *message.Message, dir string) []string {
	mat := &attach.Materializer{Dir: dir}
	var names []string
	for _, att := range m.Attachments {
		name, err := mat.Save(att)
		if err != nil {
			slog.Warn("skipping attachment", "group", att.Group, "err", err)
			m.AddProblem(att.Group, err)
			continue
		}
		slog.Info("extracted attachment", "file", filepath.Join(dir, name), "size", humanSize(len(att.Data)))
		names = append(names, name)
	}
	return names
}

// logProblems reports collected per-entry problems without failing the run.
func logProblems(m *message.Message, source string) {
	for _, p := range m.Problems {
		slog.Warn("entry skipped", "file", source, "entry", p.Entry, "err", p.Err)
	}
}

// pdfName derives the output PDF filename for message i of the source
// file. Single messages get <base>.pdf, archive members get <base>_N.pdf.
func pdfName(source string, i, total int) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if total > 1 {
		return fmt.Sprintf("%s_%03d.pdf", base, i+1)
	}
	return base + ".pdf"
}

// processFile runs the whole pipeline for one input file: attachments
// into dir, one PDF per message alongside them.
func processFile(path, dir string) error {
	msgs, err := parseFile(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for i, m := range msgs {
		logProblems(m, path)
		names := saveAttachments(m, dir)
		pdfPath := filepath.Join(dir, pdfName(path, i, len(msgs)))
		if err := render.RenderFile(pdfPath, m.Record, names); err != nil {
			return err
		}
		slog.Info("wrote pdf", "file", pdfPath)
	}
	return nil
}
