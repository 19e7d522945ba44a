// Package report writes the batch-mode summary spreadsheet: one row per
// processed message with its key metadata and counters.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/abinashsankar/email2pdf/message"
)

// Row is one processed message in the summary sheet.
type Row struct {
	File        string
	From        string
	Subject     string
	SentOn      string
	Recipients  int
	Attachments int
	Problems    int
}

// NewRow builds a summary row from a parsed message and its source file.
func NewRow(file string, m *message.Message, attachments int) Row {
	return Row{
		File:        file,
		From:        m.Record.From,
		Subject:     m.Record.Subject,
		SentOn:      m.Record.SentOn.String(),
		Recipients:  len(m.Record.To),
		Attachments: attachments,
		Problems:    len(m.Problems),
	}
}

var header = []string{"File", "From", "Subject", "Sent On", "Recipients", "Attachments", "Problems"}

// Write saves the summary rows as an .xlsx workbook at path.
func Write(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}

	for r, row := range rows {
		values := []interface{}{
			row.File, row.From, row.Subject, row.SentOn,
			row.Recipients, row.Attachments, row.Problems,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("building cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
