// Package message defines the data model shared by every parser: the
// extracted Record, its attachments, and the per-entry problem list.
package message

import (
	"fmt"
	"time"
)

// Record holds the metadata and body extracted from one email message.
// Zero values mean the property was absent from the source file.
type Record struct {
	From    string     // Sender address or display name.
	To      []string   // Recipients, in discovery order.
	SentOn  *Timestamp // nil = absent, non-nil with Known=false = undecodable.
	CC      string
	Subject string
	Body    string
}

// Timestamp is a sent-on value. Known is false when the source carried a
// timestamp property that could not be decoded, which is distinct from the
// property being absent (a nil *Timestamp on the Record).
type Timestamp struct {
	Time  time.Time
	Known bool
}

// String formats the timestamp for display, using "Unknown" for
// undecodable values.
func (t *Timestamp) String() string {
	if t == nil {
		return ""
	}
	if !t.Known {
		return "Unknown"
	}
	return t.Time.UTC().Format("2006-01-02 15:04:05")
}

// Attachment is one attachment lifted out of a message, still in memory.
// Name and MimeType are the values the message declared and may be empty;
// Group is the container entry (or part) the attachment came from and is
// used to synthesize a filename when Name is empty.
type Attachment struct {
	Name     string
	MimeType string
	Group    string
	Data     []byte
}

// Message is the complete result of parsing one email: the record, its
// attachments, and any per-entry problems encountered along the way.
// Problems are informational; a message with problems is still usable.
type Message struct {
	Record      Record
	Attachments []Attachment
	Problems    []Problem
}

// Problem records a non-fatal failure scoped to a single entry. The
// parsers collect problems instead of aborting so one bad property never
// loses the rest of the document.
type Problem struct {
	Entry string // Name of the entry that failed.
	Err   error
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %v", p.Entry, p.Err)
}

// AddProblem appends a problem for the named entry.
func (m *Message) AddProblem(entry string, err error) {
	m.Problems = append(m.Problems, Problem{Entry: entry, Err: err})
}
