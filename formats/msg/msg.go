// Package msg registers the Outlook .msg compound-document format with
// the formats registry. It is automatically registered on import.
package msg

import (
	"bytes"

	"github.com/abinashsankar/email2pdf/formats"
	"github.com/abinashsankar/email2pdf/message"
	parser "github.com/abinashsankar/email2pdf/parsers/msg"
)

// cfbMagic is the OLE2 compound document signature.
var cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

func init() {
	formats.Register(&format{})
}

type format struct{}

func (f *format) Name() string {
	return "Outlook message (.msg)"
}

func (f *format) Extensions() []string {
	return []string{".msg"}
}

func (f *format) Match(data []byte) bool {
	return len(data) >= len(cfbMagic) && bytes.Equal(data[:len(cfbMagic)], cfbMagic)
}

func (f *format) Parse(data []byte) ([]*message.Message, error) {
	return []*message.Message{parser.Parse(data)}, nil
}
