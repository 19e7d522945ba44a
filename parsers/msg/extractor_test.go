package msg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abinashsankar/email2pdf/attach"
)

func stream(name string, data []byte) *Entry {
	return &Entry{Name: name, data: data}
}

func dir(name string, children ...*Entry) *Entry {
	return &Entry{Name: name, Dir: true, Children: children}
}

func TestExtractScalars(t *testing.T) {
	m := extract([]*Entry{
		stream(streamSenderName, utf16le("Alice Example", 1)),
		stream(streamSubject, utf16le("Quarterly report", 1)),
		stream(streamBody, utf16le("See attached.", 1)),
		stream(streamDisplayCc, utf16le("bob@example.com", 1)),
	})
	r := m.Record
	if r.From != "Alice Example" {
		t.Errorf("From = %q", r.From)
	}
	if r.Subject != "Quarterly report" {
		t.Errorf("Subject = %q", r.Subject)
	}
	if r.Body != "See attached." {
		t.Errorf("Body = %q", r.Body)
	}
	if r.CC != "bob@example.com" {
		t.Errorf("CC = %q", r.CC)
	}
	if len(m.Problems) != 0 {
		t.Errorf("unexpected problems: %v", m.Problems)
	}
}

func TestSentOnFirstWins(t *testing.T) {
	first := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	second := time.Date(2023, 6, 2, 12, 0, 0, 0, time.UTC)
	toTicks := func(tm time.Time) []byte {
		return filetimeBytes(uint64(tm.Unix()+filetimeEpochDelta) * 1e7)
	}

	// The second stream must not overwrite the first, whichever of the
	// two identifiers delivered it.
	orders := [][2]string{
		{streamSubmitTime, streamDeliverTime},
		{streamDeliverTime, streamSubmitTime},
		{streamSubmitTime, streamSubmitTime},
	}
	for _, order := range orders {
		m := extract([]*Entry{
			stream(order[0], toTicks(first)),
			stream(order[1], toTicks(second)),
		})
		if m.Record.SentOn == nil || !m.Record.SentOn.Known {
			t.Fatalf("%v: missing sent-on", order)
		}
		if !m.Record.SentOn.Time.Equal(first) {
			t.Errorf("%v: SentOn = %v, want %v", order, m.Record.SentOn.Time, first)
		}
	}
}

func TestSentOnUnknownStillSet(t *testing.T) {
	m := extract([]*Entry{stream(streamSubmitTime, []byte{1, 2})})
	if m.Record.SentOn == nil {
		t.Fatal("expected sent-on to be set")
	}
	if m.Record.SentOn.Known {
		t.Error("expected unknown marker for short buffer")
	}
	if len(m.Problems) != 1 {
		t.Errorf("expected one problem, got %v", m.Problems)
	}
}

func TestScalarLastWins(t *testing.T) {
	m := extract([]*Entry{
		stream(streamSubject, utf16le("first", 1)),
		stream(streamSubject, utf16le("second", 1)),
	})
	if m.Record.Subject != "second" {
		t.Errorf("Subject = %q, want %q", m.Record.Subject, "second")
	}
}

func TestExtractRecipients(t *testing.T) {
	m := extract([]*Entry{
		dir(recipPrefix+"00000000", stream(streamRecipEmail, utf16le("one@example.com", 1))),
		dir(recipPrefix+"00000001"), // no address stream: contributes nothing
		dir(recipPrefix+"00000002", stream(streamRecipEmail, utf16le("two@example.com", 1))),
	})
	want := []string{"one@example.com", "two@example.com"}
	if len(m.Record.To) != len(want) {
		t.Fatalf("To = %v, want %v", m.Record.To, want)
	}
	for i := range want {
		if m.Record.To[i] != want[i] {
			t.Errorf("To[%d] = %q, want %q", i, m.Record.To[i], want[i])
		}
	}
}

func TestExtractAttachment(t *testing.T) {
	payload := []byte{0x25, 0x50, 0x44, 0x46}
	m := extract([]*Entry{
		dir(attachPrefix+"00000000",
			stream(streamAttachData, payload),
			stream(streamAttachNameL, utf16le("report.pdf", 1)),
			stream(streamAttachMime, utf16le("application/pdf", 1)),
		),
	})
	if len(m.Attachments) != 1 {
		t.Fatalf("attachments = %d, want 1", len(m.Attachments))
	}
	att := m.Attachments[0]
	if att.Name != "report.pdf" {
		t.Errorf("Name = %q", att.Name)
	}
	if att.MimeType != "application/pdf" {
		t.Errorf("MimeType = %q", att.MimeType)
	}
	if string(att.Data) != string(payload) {
		t.Errorf("Data = %v", att.Data)
	}
	if att.Group != attachPrefix+"00000000" {
		t.Errorf("Group = %q", att.Group)
	}
}

func TestAttachmentFilenameFirstWins(t *testing.T) {
	m := extract([]*Entry{
		dir(attachPrefix+"00000000",
			stream(streamAttachName, utf16le("short.txt", 1)),
			stream(streamAttachNameL, utf16le("long-name.txt", 1)),
			stream(streamAttachData, []byte{1}),
		),
	})
	if len(m.Attachments) != 1 {
		t.Fatalf("attachments = %d, want 1", len(m.Attachments))
	}
	if got := m.Attachments[0].Name; got != "short.txt" {
		t.Errorf("Name = %q, want %q", got, "short.txt")
	}
}

func TestAttachmentWithoutPayloadDropped(t *testing.T) {
	m := extract([]*Entry{
		dir(attachPrefix+"00000000",
			stream(streamAttachNameL, utf16le("ghost.txt", 1)),
			stream(streamAttachMime, utf16le("text/plain", 1)),
		),
	})
	if len(m.Attachments) != 0 {
		t.Errorf("expected no attachments, got %d", len(m.Attachments))
	}
}

func TestUnknownEntriesIgnored(t *testing.T) {
	m := extract([]*Entry{
		stream("__substg1.0_3FFA001F", utf16le("ignored", 1)),
		dir("__nameid_version1.0", stream("child", nil)),
		stream("__properties_version1.0", make([]byte, 32)),
	})
	if len(m.Problems) != 0 {
		t.Errorf("unexpected problems: %v", m.Problems)
	}
	if m.Record.From != "" || len(m.Record.To) != 0 || len(m.Attachments) != 0 {
		t.Error("unknown entries should contribute nothing")
	}
}

func TestParseRejectsNonContainer(t *testing.T) {
	m := Parse([]byte("this is not a compound document"))
	if m == nil {
		t.Fatal("Parse must never return nil")
	}
	if len(m.Problems) != 1 {
		t.Fatalf("expected one problem, got %v", m.Problems)
	}
	if m.Record.From != "" || m.Record.SentOn != nil || len(m.Attachments) != 0 {
		t.Error("expected an empty record on container-open failure")
	}
}

func TestEndToEndMinimalDocument(t *testing.T) {
	payload := []byte("%PDF-1.4 minimal payload")
	m := extract([]*Entry{
		stream(streamSenderName, utf16le("alice@example.com", 1)),
		stream(streamSubject, utf16le("Minimal", 1)),
		dir(attachPrefix+"00000000",
			stream(streamAttachData, payload),
			stream(streamAttachNameL, utf16le("report.pdf", 1)),
		),
	})

	if m.Record.From != "alice@example.com" || m.Record.Subject != "Minimal" {
		t.Errorf("record = %+v", m.Record)
	}
	if len(m.Record.To) != 0 || m.Record.CC != "" || m.Record.SentOn != nil {
		t.Errorf("expected absent fields, got %+v", m.Record)
	}

	mat := &attach.Materializer{Dir: t.TempDir()}
	var names []string
	for _, a := range m.Attachments {
		name, err := mat.Save(a)
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		names = append(names, name)
	}
	if len(names) != 1 || names[0] != "report.pdf" {
		t.Fatalf("attachment list = %v, want [report.pdf]", names)
	}
	got, err := os.ReadFile(filepath.Join(mat.Dir, "report.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(payload) {
		t.Errorf("written bytes = %q, want %q", got, payload)
	}
}
