// Package eml parses RFC 5322 messages (.eml files) into the shared
// record model using the go-message mail reader.
package eml

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message/mail"

	"github.com/abinashsankar/email2pdf/message"
)

// Parse decodes an .eml message. Like the .msg parser it is best-effort:
// header or part failures are collected as Problems and parsing moves on.
// The returned Message is never nil.
func Parse(data []byte) *message.Message {
	m := &message.Message{}
	mr, err := mail.CreateReader(bytes.NewReader(data))
	if err != nil {
		m.AddProblem("(message)", fmt.Errorf("reading message: %w", err))
		return m
	}
	defer mr.Close()

	parseHeader(m, mr.Header)

	part := 0
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			m.AddProblem(fmt.Sprintf("part %d", part), err)
			break
		}
		parsePart(m, p, part)
		part++
	}
	return m
}

// parseHeader lifts the scalar fields out of the top-level header.
func parseHeader(m *message.Message, h mail.Header) {
	if v, err := h.Text("From"); err == nil {
		m.Record.From = v
	} else {
		m.AddProblem("From", err)
	}
	if v, err := h.Subject(); err == nil {
		m.Record.Subject = v
	} else {
		m.AddProblem("Subject", err)
	}
	if v, err := h.Text("Cc"); err == nil {
		m.Record.CC = v
	}

	if addrs, err := h.AddressList("To"); err == nil {
		for _, a := range addrs {
			m.Record.To = append(m.Record.To, formatAddress(a))
		}
	} else {
		m.AddProblem("To", err)
	}

	if h.Get("Date") != "" {
		if d, err := h.Date(); err == nil {
			m.Record.SentOn = &message.Timestamp{Time: d, Known: true}
		} else {
			m.Record.SentOn = &message.Timestamp{}
			m.AddProblem("Date", err)
		}
	}
}

// parsePart routes one MIME part: the first inline text part becomes the
// body, attachment parts are collected with their declared metadata.
func parsePart(m *message.Message, p *mail.Part, idx int) {
	switch h := p.Header.(type) {
	case *mail.InlineHeader:
		if m.Record.Body != "" {
			return
		}
		ct, _, err := h.ContentType()
		if err != nil || !strings.HasPrefix(ct, "text/") {
			return
		}
		body, err := io.ReadAll(p.Body)
		if err != nil {
			m.AddProblem(fmt.Sprintf("part %d", idx), err)
			return
		}
		m.Record.Body = strings.TrimSpace(string(body))
	case *mail.AttachmentHeader:
		name, _ := h.Filename()
		ct, _, _ := h.ContentType()
		data, err := io.ReadAll(p.Body)
		if err != nil {
			m.AddProblem(fmt.Sprintf("part %d", idx), err)
			return
		}
		if len(data) == 0 {
			return
		}
		m.Attachments = append(m.Attachments, message.Attachment{
			Name:     name,
			MimeType: ct,
			Group:    fmt.Sprintf("part_%08d", idx),
			Data:     data,
		})
	}
}

// formatAddress renders an address the way it appeared, preferring
// "Name <addr>" when a display name is present.
func formatAddress(a *mail.Address) string {
	if a.Name != "" {
		return fmt.Sprintf("%s <%s>", a.Name, a.Address)
	}
	return a.Address
}
