// Package mbox splits an mbox archive into individual messages and runs
// each one through the eml parser.
package mbox

import (
	"bytes"
	"fmt"
	"io"

	mboxlib "github.com/emersion/go-mbox"

	"github.com/abinashsankar/email2pdf/message"
	"github.com/abinashsankar/email2pdf/parsers/eml"
)

// Parse decodes every message in an mbox archive. Messages that fail to
// read are skipped with a Problem attached to the previous message, or
// dropped entirely when nothing was parsed yet; the archive as a whole
// never fails once the first message boundary is found.
func Parse(data []byte) ([]*message.Message, error) {
	mr := mboxlib.NewReader(bytes.NewReader(data))

	var msgs []*message.Message
	for i := 0; ; i++ {
		r, err := mr.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(msgs) == 0 {
				return nil, fmt.Errorf("reading mbox: %w", err)
			}
			msgs[len(msgs)-1].AddProblem(fmt.Sprintf("mbox message %d", i), err)
			break
		}
		raw, err := io.ReadAll(r)
		if err != nil {
			m := &message.Message{}
			m.AddProblem(fmt.Sprintf("mbox message %d", i), err)
			msgs = append(msgs, m)
			continue
		}
		msgs = append(msgs, eml.Parse(raw))
	}
	return msgs, nil
}
