// Package attach persists extracted attachments under filesystem-safe
// names derived from what the message declared.
package attach

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abinashsankar/email2pdf/message"
)

// mimeExtensions maps declared MIME types to the extension appended when
// the derived filename carries none. Unrecognized types fall back to .bin.
var mimeExtensions = map[string]string{
	"application/pdf":    ".pdf",
	"text/plain":         ".txt",
	"image/jpeg":         ".jpg",
	"image/png":          ".png",
	"application/msword": ".doc",
}

// unsafeChars are replaced with a period so the name is valid on any
// target filesystem, Windows included.
const unsafeChars = `<>:"/\|?*`

// Filename derives the output filename for an attachment: the declared
// name if present, otherwise a name synthesized from the attachment's
// group entry. Unsafe characters become periods, and an extension is
// looked up from the MIME type only when the sanitized base has none.
func Filename(att message.Attachment) string {
	base := att.Name
	if base == "" {
		base = "attachment_" + last8(att.Group)
	}
	base = strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) {
			return '.'
		}
		return r
	}, base)
	if strings.Contains(base, ".") {
		return base
	}
	if ext, ok := mimeExtensions[att.MimeType]; ok {
		return base + ext
	}
	return base + ".bin"
}

// Materializer writes attachments into a single output directory. Name
// collisions are resolved last-write-wins; derivation is best-effort.
type Materializer struct {
	Dir string
}

// Save writes the attachment's bytes under the derived filename and
// returns the bare filename (not the full path).
func (m *Materializer) Save(att message.Attachment) (string, error) {
	if err := os.MkdirAll(m.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	name := Filename(att)
	path := filepath.Join(m.Dir, name)
	if err := os.WriteFile(path, att.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return name, nil
}

// last8 returns the final 8 characters of s, or all of s when shorter.
func last8(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[len(s)-8:]
}
