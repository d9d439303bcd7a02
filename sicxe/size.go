package sicxe

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// byteLiteral splits a BYTE operand into its kind ('C' or 'X') and body.
func byteLiteral(operand string) (kind byte, body string, err error) {
	if len(operand) < 3 || operand[1] != '\'' || !strings.HasSuffix(operand, "'") {
		err = ErrByteSyntax
		return
	}

	kind = strings.ToUpper(operand[:1])[0]
	body = operand[2 : len(operand)-1]

	switch kind {
	case 'C':
	case 'X':
		padded := body
		if len(padded)%2 != 0 {
			padded = "0" + padded
		}
		if _, derr := hex.DecodeString(padded); derr != nil || len(body) == 0 {
			err = ErrByteSyntax
		}
	default:
		err = ErrByteSyntax
	}

	return
}

// byteSize returns the number of bytes a BYTE operand occupies.
func byteSize(operand string) (size uint32, err error) {
	kind, body, err := byteLiteral(operand)
	if err != nil {
		return
	}

	if kind == 'C' {
		size = uint32(len(body))
	} else {
		size = uint32((len(body) + 1) / 2)
	}

	return
}

// reserveCount parses the decimal count of a RESW or RESB.
func reserveCount(operand string) (count uint32, err error) {
	value, perr := strconv.ParseUint(strings.TrimSpace(operand), 10, 32)
	if perr != nil {
		err = ErrReserveOperand
		return
	}
	count = uint32(value)
	return
}

// LineSize returns the number of bytes a statement occupies in the object
// program. It is shared by location assignment and the record emitter.
func LineSize(line SourceLine) (size uint32, err error) {
	if line.Extended && line.IsDirective() {
		err = &ErrOpcode{Opcode: line.Mnemonic(), Err: ErrExtendedInvalid}
		return
	}

	switch line.Opcode {
	case "":
	case DIR_START, DIR_END, DIR_BASE, DIR_NOBASE, DIR_EQU, DIR_ORG, DIR_LTORG:
	case DIR_WORD:
		size = 3
	case DIR_RESW:
		size, err = reserveCount(line.Operand)
		size *= 3
	case DIR_RESB:
		size, err = reserveCount(line.Operand)
	case DIR_BYTE:
		size, err = byteSize(line.Operand)
	default:
		spec, ok := LookupInstruction(line.Opcode)
		if !ok {
			err = &ErrOpcode{Opcode: line.Mnemonic(), Err: ErrOpcodeUnknown}
			return
		}
		if line.Extended && !spec.Formats.Has(FORMAT_4) {
			err = &ErrOpcode{Opcode: line.Mnemonic(), Err: ErrExtendedInvalid}
			return
		}
		size = spec.Size(line.Extended)
	}

	return
}
