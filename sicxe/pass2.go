package sicxe

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// nixbpe flag bits held in the third nibble of format 3 and 4 codes.
const (
	FLAG_X = 0b1000
	FLAG_B = 0b0100
	FLAG_P = 0b0010
	FLAG_E = 0b0001
)

// Displacement limits of format 3 codes.
const (
	PC_DISP_MIN   = -2048
	PC_DISP_MAX   = 2047
	BASE_DISP_MAX = 4095
	DIRECT_MAX    = 4095
	EXTENDED_MAX  = 0xFFFFF
)

// registerMap maps format 2 register names to numbers.
var registerMap = map[string]int{
	"A":  0,
	"X":  1,
	"L":  2,
	"B":  3,
	"S":  4,
	"T":  5,
	"F":  6,
	"PC": 8,
	"SW": 9,
}

// AssemblyContext is the state of a single pass 2 run.
type AssemblyContext struct {
	Symbols     SymbolTable
	Base        uint32 // Base register value, valid if BaseSet.
	BaseSet     bool
	Diagnostics []Diagnostic
}

// SetBase sets the base register value.
func (ctx *AssemblyContext) SetBase(base uint32) {
	ctx.Base = base
	ctx.BaseSet = true
}

// ClearBase forgets the base register value.
func (ctx *AssemblyContext) ClearBase() {
	ctx.Base = 0
	ctx.BaseSet = false
}

// Generate runs pass 2, encoding the object code of every located
// statement. The input is not modified. Problems are collected as
// diagnostics; only an unknown instruction with StrictInstructions set
// aborts the pass.
func (asm *Assembler) Generate(lines []SourceLine, symbols SymbolTable) (generated []SourceLine, diags []Diagnostic, err error) {
	generated = slices.Clone(lines)

	ctx := &AssemblyContext{Symbols: symbols}

	for n := range generated {
		line := &generated[n]

		var code string
		code, err = asm.encode(ctx, line)
		if err != nil {
			generated = nil
			return
		}
		line.ObjectCode = code

		asm.trace(line, "code %v", code)
	}

	diags = ctx.Diagnostics

	return
}

// warn records a warning on the context.
func (asm *Assembler) warn(ctx *AssemblyContext, line *SourceLine, err error) {
	diag := warning(line, err)
	asm.report(diag)
	ctx.Diagnostics = append(ctx.Diagnostics, diag)
}

// fail records an error on the context.
func (asm *Assembler) fail(ctx *AssemblyContext, line *SourceLine, err error) {
	diag := failure(line, err)
	asm.report(diag)
	ctx.Diagnostics = append(ctx.Diagnostics, diag)
}

// encode returns the object code of one statement.
func (asm *Assembler) encode(ctx *AssemblyContext, line *SourceLine) (code string, err error) {
	operand := strings.TrimSpace(line.Operand)

	switch line.Opcode {
	case "", DIR_START, DIR_END, DIR_ORG, DIR_RESW, DIR_RESB, DIR_EQU, DIR_LTORG:
		return
	case DIR_BASE:
		if addr, ok := ctx.Symbols[operand]; ok {
			ctx.SetBase(addr)
		} else if value, perr := strconv.ParseUint(operand, 16, 32); perr == nil {
			ctx.SetBase(uint32(value))
		} else {
			asm.warn(ctx, line, ErrBaseOperand)
		}
		return
	case DIR_NOBASE:
		ctx.ClearBase()
		return
	case DIR_BYTE:
		code, serr := byteCode(operand)
		if serr != nil {
			asm.fail(ctx, line, serr)
		}
		return code, nil
	case DIR_WORD:
		value, perr := strconv.ParseInt(operand, 10, 32)
		if perr != nil {
			asm.fail(ctx, line, ErrWordOperand)
			return
		}
		code = fmt.Sprintf("%06X", uint32(value)&0xFFFFFF)
		return
	}

	spec, ok := LookupInstruction(line.Opcode)
	if !ok {
		uerr := &ErrOpcode{Opcode: line.Mnemonic(), Err: ErrInstructionUnknown}
		if asm.StrictInstructions {
			err = lineError(line, uerr)
			return
		}
		asm.fail(ctx, line, uerr)
		return
	}

	if line.Extended && !spec.Formats.Has(FORMAT_4) {
		asm.fail(ctx, line, &ErrOpcode{Opcode: line.Mnemonic(), Err: ErrExtendedInvalid})
		return
	}

	var cerr error
	switch spec.Format(line.Extended) {
	case FORMAT_1:
		code = fmt.Sprintf("%02X", spec.Opcode)
	case FORMAT_2:
		code, cerr = format2(spec, operand)
	default:
		code, cerr = asm.format34(ctx, line, spec)
	}

	if cerr != nil {
		asm.fail(ctx, line, cerr)
		code = ""
	}

	return
}

// byteCode encodes a BYTE operand. Odd length hex literals are padded
// with a leading zero.
func byteCode(operand string) (code string, err error) {
	kind, body, err := byteLiteral(operand)
	if err != nil {
		return
	}

	if kind == 'C' {
		code = fmt.Sprintf("%X", []byte(body))
		return
	}

	code = strings.ToUpper(body)
	if len(code)%2 != 0 {
		code = "0" + code
	}

	return
}

// register returns the number of a register name.
func register(name string) (number int, err error) {
	number, ok := registerMap[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		err = ErrRegister(strings.TrimSpace(name))
	}
	return
}

// format2 encodes a register to register instruction.
func format2(spec InstructionSpec, operand string) (code string, err error) {
	if len(operand) == 0 {
		err = ErrOperandMissing
		return
	}

	args := strings.Split(operand, ",")
	for n := range args {
		args[n] = strings.TrimSpace(args[n])
	}

	var r1, r2 int

	switch spec.Mnemonic {
	case "SVC":
		r1, err = nibble(args[0], 0)
	case "SHIFTL", "SHIFTR":
		if len(args) < 2 {
			err = ErrOperandMissing
			return
		}
		if r1, err = register(args[0]); err != nil {
			return
		}
		r2, err = nibble(args[1], 1)
	default:
		if r1, err = register(args[0]); err != nil {
			return
		}
		if len(args) > 1 {
			r2, err = register(args[1])
		}
	}

	if err != nil {
		return
	}

	code = fmt.Sprintf("%02X%X%X", spec.Opcode, r1, r2)

	return
}

// nibble parses a decimal count in bias..15+bias, returning count-bias.
func nibble(word string, bias int) (value int, err error) {
	count, perr := strconv.Atoi(word)
	if perr != nil || count < bias || count > 15+bias {
		err = ErrParseNumber(word)
		return
	}
	value = count - bias
	return
}

// format34 encodes a format 3 or format 4 instruction.
func (asm *Assembler) format34(ctx *AssemblyContext, line *SourceLine, spec InstructionSpec) (code string, err error) {
	op := DecodeOperand(line.Operand)

	opcode := (spec.Opcode & 0xFC) | op.Mode.NI()

	flags := 0
	if op.Indexed {
		flags |= FLAG_X
	}

	target, absolute, err := op.Resolve(ctx.Symbols)
	if err != nil {
		return
	}

	if line.Extended {
		if target < 0 || target > EXTENDED_MAX {
			err = &ErrAddressOutOfRange{Target: target, Location: line.Location, Format: FORMAT_4}
			return
		}
		flags |= FLAG_E
		code = fmt.Sprintf("%02X%X%05X", opcode, flags, target)
		return
	}

	disp, dispFlags, err := asm.displacement(ctx, line, target, absolute)
	if err != nil {
		return
	}
	flags |= dispFlags

	code = fmt.Sprintf("%02X%X%03X", opcode, flags, disp&0xFFF)

	return
}

// displacement resolves a format 3 target into a 12 bit displacement and
// its b/p flags: PC-relative first, then base-relative, then direct.
func (asm *Assembler) displacement(ctx *AssemblyContext, line *SourceLine, target int64, absolute bool) (disp int64, flags int, err error) {
	outOfRange := &ErrAddressOutOfRange{Target: target, Location: line.Location, Format: FORMAT_3}

	if absolute && !asm.RelativeConstants {
		if target < 0 || target > DIRECT_MAX {
			err = outOfRange
			return
		}
		return target, 0, nil
	}

	pc := int64(line.Location) + int64(FORMAT_3)
	if disp = target - pc; disp >= PC_DISP_MIN && disp <= PC_DISP_MAX {
		return disp, FLAG_P, nil
	}

	if ctx.BaseSet {
		if disp = target - int64(ctx.Base); disp >= 0 && disp <= BASE_DISP_MAX {
			return disp, FLAG_B, nil
		}
	}

	if target >= 0 && target <= DIRECT_MAX {
		return target, 0, nil
	}

	err = outOfRange
	return
}
