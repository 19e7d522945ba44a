// Package eml registers the RFC 5322 .eml format with the formats
// registry. It is automatically registered on import.
package eml

import (
	"github.com/abinashsankar/email2pdf/formats"
	"github.com/abinashsankar/email2pdf/message"
	parser "github.com/abinashsankar/email2pdf/parsers/eml"
)

func init() {
	formats.Register(&format{})
}

type format struct{}

func (f *format) Name() string {
	return "Email message (.eml)"
}

func (f *format) Extensions() []string {
	return []string{".eml"}
}

// Match always returns false: .eml has no magic bytes, so detection runs
// on extension alone and binary formats get first refusal.
func (f *format) Match(data []byte) bool {
	return false
}

func (f *format) Parse(data []byte) ([]*message.Message, error) {
	return []*message.Message{parser.Parse(data)}, nil
}
