package sicxe

import (
	"fmt"
	"strings"
)

// AddressingPrefix is the addressing marker on an operand.
type AddressingPrefix int

const (
	PREFIX_NONE      = AddressingPrefix(0) //
	PREFIX_IMMEDIATE = AddressingPrefix(1) // #
	PREFIX_INDIRECT  = AddressingPrefix(2) // @
)

func (prefix AddressingPrefix) String() string {
	switch prefix {
	case PREFIX_IMMEDIATE:
		return "#"
	case PREFIX_INDIRECT:
		return "@"
	}
	return ""
}

// SourceLine is one assembly statement, augmented as it flows through
// the passes.
type SourceLine struct {
	Index    int              // Index among the parsed lines.
	LineNo   string           // Source line number token.
	Label    string           // Label, or empty.
	Opcode   string           // Upper case mnemonic or directive, without '+'.
	Extended bool             // Opcode was written with a leading '+'.
	Operand  string           // Operand as written.
	Prefix   AddressingPrefix // Addressing prefix of the operand.
	Text     string           // Original line text.

	Location   uint32 // Set by pass 1.
	Located    bool   // True once pass 1 has assigned Location.
	ObjectCode string // Set by pass 2, empty for space-only directives.
}

// Mnemonic returns the opcode as written, with any '+' restored.
func (line SourceLine) Mnemonic() string {
	if line.Extended {
		return "+" + line.Opcode
	}
	return line.Opcode
}

// Loc returns the location as four upper case hex digits, or an empty
// string before pass 1.
func (line SourceLine) Loc() string {
	if !line.Located {
		return ""
	}
	return fmt.Sprintf("%04X", line.Location)
}

// IsDirective returns true if the opcode is an assembler directive.
func (line SourceLine) IsDirective() bool {
	return IsDirective(line.Opcode)
}

// Cleaned joins the label, opcode and operand with single spaces.
func (line SourceLine) Cleaned() string {
	var parts []string
	for _, part := range []string{line.Label, line.Mnemonic(), line.Operand} {
		if len(part) != 0 {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// String renders the line as a listing row.
func (line SourceLine) String() string {
	return fmt.Sprintf("%-4s %-8s %-8s %-12s %s", line.Loc(), line.Label, line.Mnemonic(), line.Operand, line.ObjectCode)
}
