// Package msg decodes Outlook .msg files, which are OLE2 compound
// documents carrying MAPI properties as named streams.
//
// Each property lives in a stream named "__substg1.0_" followed by the
// 16-bit property ID and 16-bit type code in hex (001F = PT_UNICODE,
// 0040 = PT_SYSTIME, 0102 = PT_BINARY). Recipients and attachments are
// storage directories named with a fixed prefix, each holding its own
// set of property streams one level down.
package msg

import "errors"

// Top-level scalar property streams.
const (
	streamSenderName  = "__substg1.0_0C1A001F" // PR_SENDER_NAME
	streamSubject     = "__substg1.0_0037001F" // PR_SUBJECT
	streamBody        = "__substg1.0_1000001F" // PR_BODY
	streamDisplayCc   = "__substg1.0_0E03001F" // PR_DISPLAY_CC
	streamSubmitTime  = "__substg1.0_00390040" // PR_CLIENT_SUBMIT_TIME
	streamDeliverTime = "__substg1.0_0E060040" // PR_MESSAGE_DELIVERY_TIME
)

// Group directory prefixes and their property streams.
const (
	recipPrefix  = "__recip_version1.0_"
	attachPrefix = "__attach_version1.0_"

	streamRecipEmail  = "__substg1.0_3003001F" // PR_EMAIL_ADDRESS
	streamAttachData  = "__substg1.0_37010102" // PR_ATTACH_DATA_BIN
	streamAttachMime  = "__substg1.0_3704001F" // PR_ATTACH_MIME_TAG
	streamAttachName  = "__substg1.0_370E001F" // PR_ATTACH_FILENAME
	streamAttachNameL = "__substg1.0_3707001F" // PR_ATTACH_LONG_FILENAME
)

// ErrNotCompoundFile is returned when the input lacks the OLE2 compound
// document signature.
var ErrNotCompoundFile = errors.New("not an OLE2 compound document")

// errShortFiletime marks a timestamp stream too small to hold a FILETIME.
var errShortFiletime = errors.New("timestamp stream shorter than 8 bytes")

// cfbSignature is the 8-byte magic at the start of every compound document.
var cfbSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
