// Package mbox registers the mbox archive format with the formats
// registry. It is automatically registered on import.
package mbox

import (
	"bytes"

	"github.com/abinashsankar/email2pdf/formats"
	"github.com/abinashsankar/email2pdf/message"
	parser "github.com/abinashsankar/email2pdf/parsers/mbox"
)

func init() {
	formats.Register(&format{})
}

type format struct{}

func (f *format) Name() string {
	return "Mbox archive (.mbox)"
}

func (f *format) Extensions() []string {
	return []string{".mbox"}
}

func (f *format) Match(data []byte) bool {
	return bytes.HasPrefix(data, []byte("From "))
}

func (f *format) Parse(data []byte) ([]*message.Message, error) {
	return parser.Parse(data)
}
