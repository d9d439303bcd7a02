package sicxe

import (
	"strconv"
	"strings"
)

// AddressingMode is the n/i addressing mode of a format 3 or 4 operand.
type AddressingMode int

const (
	MODE_NONE      = AddressingMode(0) // no operand
	MODE_SIMPLE    = AddressingMode(1) // n=1 i=1
	MODE_IMMEDIATE = AddressingMode(2) // n=0 i=1
	MODE_INDIRECT  = AddressingMode(3) // n=1 i=0
)

func (mode AddressingMode) String() string {
	switch mode {
	case MODE_NONE:
		return "none"
	case MODE_SIMPLE:
		return "simple"
	case MODE_IMMEDIATE:
		return "immediate"
	case MODE_INDIRECT:
		return "indirect"
	}
	return "unknown"
}

// NI returns the n and i bits as the low two bits of the opcode byte.
func (mode AddressingMode) NI() byte {
	switch mode {
	case MODE_IMMEDIATE:
		return 0b01
	case MODE_INDIRECT:
		return 0b10
	}
	return 0b11
}

// Operand is a decoded format 3 or 4 operand.
type Operand struct {
	Mode    AddressingMode
	Indexed bool   // ,X suffix
	Target  string // Symbol or number, without prefix or index.
}

// DecodeOperand classifies a format 3 or 4 operand.
func DecodeOperand(operand string) (op Operand) {
	operand = strings.TrimSpace(operand)
	if len(operand) == 0 {
		return Operand{Mode: MODE_NONE}
	}

	if comma := strings.LastIndex(operand, ","); comma >= 0 {
		if strings.EqualFold(strings.TrimSpace(operand[comma+1:]), "X") {
			op.Indexed = true
			operand = strings.TrimSpace(operand[:comma])
		}
	}

	switch {
	case strings.HasPrefix(operand, "#"):
		op.Mode = MODE_IMMEDIATE
		operand = operand[1:]
	case strings.HasPrefix(operand, "@"):
		op.Mode = MODE_INDIRECT
		operand = operand[1:]
	default:
		op.Mode = MODE_SIMPLE
	}

	op.Target = operand

	return
}

// Resolve finds the target address of the operand. Symbols are tried
// first, then decimal numbers for immediate operands, then hex numbers.
// Absolute is set for immediate numbers and for the empty operand, which
// are values rather than addresses.
func (op Operand) Resolve(symbols SymbolTable) (addr int64, absolute bool, err error) {
	if op.Mode == MODE_NONE {
		absolute = true
		return
	}

	if value, ok := symbols[op.Target]; ok {
		addr = int64(value)
		return
	}

	if op.Mode == MODE_IMMEDIATE {
		if value, perr := strconv.ParseInt(op.Target, 10, 32); perr == nil {
			return value, true, nil
		}
	}

	value, perr := strconv.ParseInt(op.Target, 16, 32)
	if perr != nil {
		err = ErrSymbol(op.Target)
		return
	}

	addr = value
	absolute = op.Mode == MODE_IMMEDIATE

	return
}
