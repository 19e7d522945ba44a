// properties.go decodes the two inline value encodings used by .msg
// property streams: UTF-16LE text and Windows FILETIME timestamps.

package msg

import (
	"encoding/binary"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"

	"github.com/abinashsankar/email2pdf/message"
)

// Seconds between the FILETIME epoch (1601-01-01) and the Unix epoch.
const filetimeEpochDelta = 11644473600

var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUnicode interprets b as UTF-16LE text, dropping a trailing odd
// byte and stripping trailing NULs. Invalid code units are replaced
// rather than failing; empty input yields an empty string.
func DecodeUnicode(b []byte) string {
	b = b[:len(b)&^1]
	if len(b) == 0 {
		return ""
	}
	// The decoder substitutes replacement runes instead of erroring, but
	// guard anyway and keep whatever partial output came back.
	decoded, err := utf16Decoder.NewDecoder().Bytes(b)
	if err != nil && len(decoded) == 0 {
		return ""
	}
	return strings.TrimRight(string(decoded), "\x00")
}

// DecodeFiletime interprets the first 8 bytes of b as a little-endian
// count of 100-nanosecond intervals since 1601-01-01T00:00:00 UTC. An
// undersized buffer yields a Timestamp with Known=false; the conversion
// itself never fails.
func DecodeFiletime(b []byte) *message.Timestamp {
	if len(b) < 8 {
		return &message.Timestamp{}
	}
	ticks := binary.LittleEndian.Uint64(b[:8])

	// Split ticks into seconds and nanoseconds before touching time.Time:
	// a single time.Duration overflows for any date after the 1890s.
	secs := int64(ticks/1e7) - filetimeEpochDelta
	nsec := int64(ticks%1e7) * 100
	return &message.Timestamp{Time: time.Unix(secs, nsec).UTC(), Known: true}
}
