// extractor.go walks the container tree once, classifying each entry by
// name and accumulating the record, recipient list, and attachments.

package msg

import (
	"strings"

	"github.com/abinashsankar/email2pdf/message"
)

// scalarStreams maps each top-level property stream to its assignment.
// Text properties are last-wins; the two sent-on streams share a
// first-wins rule handled in extractScalar.
var scalarStreams = map[string]func(*message.Record, string){
	streamSenderName: func(r *message.Record, s string) { r.From = s },
	streamSubject:    func(r *message.Record, s string) { r.Subject = s },
	streamBody:       func(r *message.Record, s string) { r.Body = s },
	streamDisplayCc:  func(r *message.Record, s string) { r.CC = s },
}

// Parse decodes a .msg compound document into a Message. Parsing is
// best-effort throughout: a failure to open the container, or to decode
// any single entry, is recorded as a Problem and leaves the rest of the
// result intact. The returned Message is never nil.
func Parse(data []byte) *message.Message {
	root, err := openContainer(data)
	if err != nil {
		m := &message.Message{}
		m.AddProblem("(container)", err)
		return m
	}
	return extract(root)
}

// extract runs the classification walk over the root entries.
func extract(root []*Entry) *message.Message {
	m := &message.Message{}
	for _, entry := range root {
		extractEntry(m, entry)
	}
	return m
}

// extractEntry classifies one root-level entry and dispatches it. Streams
// may carry scalar metadata; directories may be recipient or attachment
// groups. Anything else is ignored.
func extractEntry(m *message.Message, entry *Entry) {
	switch {
	case !entry.Dir:
		extractScalar(m, entry)
	case strings.HasPrefix(entry.Name, recipPrefix):
		extractRecipient(m, entry)
	case strings.HasPrefix(entry.Name, attachPrefix):
		extractAttachment(m, entry)
	}
}

// extractScalar handles the fixed top-level property streams. The sent-on
// field is first-wins across its two source streams; every other scalar
// simply takes the latest value seen.
func extractScalar(m *message.Message, entry *Entry) {
	switch entry.Name {
	case streamSubmitTime, streamDeliverTime:
		if m.Record.SentOn != nil {
			return
		}
		data, err := entry.Read()
		if err != nil {
			m.AddProblem(entry.Name, err)
			return
		}
		ts := DecodeFiletime(data)
		if !ts.Known {
			m.AddProblem(entry.Name, errShortFiletime)
		}
		m.Record.SentOn = ts
	default:
		assign, ok := scalarStreams[entry.Name]
		if !ok {
			return
		}
		data, err := entry.Read()
		if err != nil {
			m.AddProblem(entry.Name, err)
			return
		}
		assign(&m.Record, DecodeUnicode(data))
	}
}

// extractRecipient scans a recipient group for its address stream and
// appends it to the To list. A group without one contributes nothing.
func extractRecipient(m *message.Message, group *Entry) {
	for _, child := range group.Children {
		if child.Dir || child.Name != streamRecipEmail {
			continue
		}
		data, err := child.Read()
		if err != nil {
			m.AddProblem(child.Name, err)
			continue
		}
		m.Record.To = append(m.Record.To, DecodeUnicode(data))
	}
}

// extractAttachment scans an attachment group for its payload, filename,
// and MIME type streams. The filename comes from either of two streams,
// first-wins. Groups with no payload bytes are dropped silently.
func extractAttachment(m *message.Message, group *Entry) {
	att := message.Attachment{Group: group.Name}
	for _, child := range group.Children {
		if child.Dir {
			continue
		}
		switch child.Name {
		case streamAttachData:
			data, err := child.Read()
			if err != nil {
				m.AddProblem(child.Name, err)
				continue
			}
			att.Data = data
		case streamAttachName, streamAttachNameL:
			data, err := child.Read()
			if err != nil {
				m.AddProblem(child.Name, err)
				continue
			}
			if att.Name == "" {
				att.Name = DecodeUnicode(data)
			}
		case streamAttachMime:
			data, err := child.Read()
			if err != nil {
				m.AddProblem(child.Name, err)
				continue
			}
			att.MimeType = DecodeUnicode(data)
		}
	}
	if len(att.Data) > 0 {
		m.Attachments = append(m.Attachments, att)
	}
}
