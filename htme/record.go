package htme

import (
	"fmt"
	"strings"
)

// Separator stands in for the blank between record fields.
const Separator = "^"

// TEXT_MAX is the largest text record body, in hex digits (30 bytes).
const TEXT_MAX = 60

// RecordType is the tag letter of a record.
type RecordType byte

const (
	RECORD_HEADER       = RecordType('H')
	RECORD_TEXT         = RecordType('T')
	RECORD_MODIFICATION = RecordType('M')
	RECORD_END          = RecordType('E')
)

func (rt RecordType) String() string {
	return string(rune(rt))
}

// Record is one line of an object program. String returns the caret
// separated form.
type Record interface {
	Type() RecordType
	String() string
}

// Display returns the record with blanks in place of carets.
func Display(rec Record) string {
	return strings.ReplaceAll(rec.String(), Separator, " ")
}

// Header names the program and gives its extent.
type Header struct {
	Name   string
	Start  uint32
	Length uint32
}

func (Header) Type() RecordType { return RECORD_HEADER }

func (h Header) String() string {
	return fmt.Sprintf("H^%-6.6s^%06X^%06X", h.Name, h.Start, h.Length)
}

// Text carries object code loaded at Start.
type Text struct {
	Start uint32
	Code  string // Hex digits, at most TEXT_MAX.
}

func (Text) Type() RecordType { return RECORD_TEXT }

// Length returns the number of bytes of object code.
func (t Text) Length() int {
	return len(t.Code) / 2
}

func (t Text) String() string {
	return fmt.Sprintf("T^%06X^%02X^%s", t.Start, t.Length(), t.Code)
}

// Modification flags an address field for relocation.
type Modification struct {
	Address uint32 // Address of the first byte holding the field.
	Nibbles int    // Length of the field in half bytes.
	Sign    byte   // '+' or '-'; the program start address is added or subtracted.
}

func (Modification) Type() RecordType { return RECORD_MODIFICATION }

func (m Modification) String() string {
	return fmt.Sprintf("M^%06X^%02X", m.Address, m.Nibbles)
}

// End gives the address of the first instruction to execute.
type End struct {
	First uint32
}

func (End) Type() RecordType { return RECORD_END }

func (e End) String() string {
	return fmt.Sprintf("E^%06X", e.First)
}
