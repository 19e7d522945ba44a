package formats

import (
	"testing"

	"github.com/abinashsankar/email2pdf/message"
)

type fakeParser struct {
	name  string
	exts  []string
	magic []byte
}

func (p *fakeParser) Name() string         { return p.name }
func (p *fakeParser) Extensions() []string { return p.exts }

func (p *fakeParser) Match(data []byte) bool {
	return len(p.magic) > 0 && len(data) >= len(p.magic) && string(data[:len(p.magic)]) == string(p.magic)
}
func (p *fakeParser) Parse(data []byte) ([]*message.Message, error) { return nil, nil }

func withRegistry(t *testing.T, parsers ...Parser) {
	t.Helper()
	saved := registry
	registry = parsers
	t.Cleanup(func() { registry = saved })
}

func TestDetectByMagic(t *testing.T) {
	bin := &fakeParser{name: "bin", exts: []string{".bin"}, magic: []byte{0xD0, 0xCF}}
	txt := &fakeParser{name: "txt", exts: []string{".txt"}}
	withRegistry(t, bin, txt)

	// Magic wins even when the extension points elsewhere.
	if p := Detect("file.txt", []byte{0xD0, 0xCF, 0x00}); p != bin {
		t.Errorf("Detect() = %v, want bin parser", p)
	}
}

func TestDetectByExtension(t *testing.T) {
	bin := &fakeParser{name: "bin", exts: []string{".bin"}, magic: []byte{0xD0, 0xCF}}
	txt := &fakeParser{name: "txt", exts: []string{".txt"}}
	withRegistry(t, bin, txt)

	if p := Detect("FILE.TXT", []byte("no magic here")); p != txt {
		t.Errorf("Detect() = %v, want txt parser", p)
	}
}

func TestDetectUnknown(t *testing.T) {
	withRegistry(t)
	if p := Detect("file.xyz", nil); p != nil {
		t.Errorf("Detect() = %v, want nil", p)
	}
}
