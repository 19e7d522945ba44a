// Package render draws an extracted email record into a PDF summary:
// headers, body with quoted-chain styling, and the attachment list.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/abinashsankar/email2pdf/message"
)

// Layout constants, in points on a Letter page.
const (
	margin     = 30
	lineHeight = 14
	labelWidth = 80
	fontSize   = 12
)

// Render draws the record and attachment list as a PDF and writes it to w.
func Render(w io.Writer, rec message.Record, attachments []string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawHeaders(pdf, tr, rec)
	pdf.Ln(10)
	drawBody(pdf, tr, rec.Body)
	pdf.Ln(10)
	drawAttachments(pdf, tr, attachments)

	if recordEmpty(rec) && len(attachments) == 0 {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.MultiCell(0, lineHeight, "No email content or attachments found.", "", "L", false)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// RenderFile renders the record to a PDF file at path.
func RenderFile(path string, rec message.Record, attachments []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Render(f, rec, attachments); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// drawHeaders prints the bold-labelled header block. Absent values print
// as "Not Found"; the sent-on line always appears.
func drawHeaders(pdf *fpdf.Fpdf, tr func(string) string, rec message.Record) {
	headers := []struct {
		label string
		value string
		show  bool
	}{
		{"From", rec.From, rec.From != ""},
		{"To", strings.Join(rec.To, ", "), len(rec.To) > 0},
		{"Sent On", rec.SentOn.String(), true},
		{"CC", rec.CC, rec.CC != ""},
		{"Subject", truncateSubject(rec.Subject), rec.Subject != ""},
	}
	for _, h := range headers {
		if !h.show {
			continue
		}
		value := h.value
		if value == "" {
			value = "Not Found"
		}
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.CellFormat(labelWidth, lineHeight, h.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", fontSize)

		// Shift the left margin so wrapped value lines stay aligned
		// under the value column, not under the label.
		pdf.SetLeftMargin(margin + labelWidth)
		pdf.MultiCell(0, lineHeight, tr(value), "", "L", false)
		pdf.SetLeftMargin(margin)
		pdf.Ln(5)
	}
}

// drawBody prints the body paragraph by paragraph. Quoted reply chains
// (lines starting ">", or carrying forwarded-message markers) are drawn
// grey and indented until the next blank paragraph.
func drawBody(pdf *fpdf.Fpdf, tr func(string) string, body string) {
	pdf.SetFont("Helvetica", "", fontSize)
	inChain := false
	for _, para := range strings.Split(body, "\n") {
		switch {
		case strings.HasPrefix(para, ">"),
			strings.Contains(para, "-----Original Message-----"),
			strings.Contains(para, "From:"):
			inChain = true
			pdf.SetTextColor(128, 128, 128)
		case inChain && strings.TrimSpace(para) == "":
			inChain = false
			pdf.SetTextColor(0, 0, 0)
		}
		if para == "" {
			pdf.Ln(lineHeight)
			continue
		}
		if inChain {
			pdf.SetLeftMargin(margin + 10)
		}
		pdf.MultiCell(0, lineHeight, tr(para), "", "L", false)
		pdf.SetLeftMargin(margin)
	}
	pdf.SetTextColor(0, 0, 0)
}

// drawAttachments prints the attachment filename list, if any.
func drawAttachments(pdf *fpdf.Fpdf, tr func(string) string, attachments []string) {
	if len(attachments) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.MultiCell(0, lineHeight, "Attachments:", "", "L", false)
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetLeftMargin(margin + 10)
	for _, name := range attachments {
		pdf.MultiCell(0, lineHeight, tr("- "+name), "", "L", false)
	}
	pdf.SetLeftMargin(margin)
}

// truncateSubject caps overly long subjects at 50 characters.
func truncateSubject(s string) string {
	if len(s) > 50 {
		return s[:47] + "..."
	}
	return s
}

// recordEmpty reports whether no field of the record carries a value.
func recordEmpty(rec message.Record) bool {
	return rec.From == "" && len(rec.To) == 0 && rec.SentOn == nil &&
		rec.CC == "" && rec.Subject == "" && rec.Body == ""
}
