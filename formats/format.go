// Package formats defines the Parser interface and a registry for
// pluggable email input formats. To add a new format, create a package
// that implements Parser and calls Register from its init function. The
// registry auto-detects formats by content (magic bytes) first and falls
// back to file extension matching.
package formats

import (
	"path/filepath"
	"strings"

	"github.com/abinashsankar/email2pdf/message"
)

// Parser handles detection and parsing of one email input format.
type Parser interface {
	// Name returns a human-readable format name.
	Name() string

	// Extensions returns file extensions this parser handles,
	// including the leading dot (e.g. ".msg", ".eml").
	Extensions() []string

	// Match returns true if data begins with recognized magic bytes.
	Match(data []byte) bool

	// Parse decodes raw file data into one or more messages. Archive
	// formats (mbox) yield several; single-message formats yield one.
	Parse(data []byte) ([]*message.Message, error)
}

var registry []Parser

// Register adds a parser to the global registry. Call this from an init
// function in your format package.
func Register(p Parser) {
	registry = append(registry, p)
}

// Detect identifies the correct parser for a file. It checks content
// (magic bytes) first, then falls back to extension matching.
func Detect(filename string, data []byte) Parser {
	for _, p := range registry {
		if p.Match(data) {
			return p
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, p := range registry {
		for _, e := range p.Extensions() {
			if ext == e {
				return p
			}
		}
	}
	return nil
}

// All returns every registered parser.
func All() []Parser {
	return registry
}
