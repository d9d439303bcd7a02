package sicxe

import (
	"errors"

	"github.com/ezrec/sicxe/translate"
)

var f = translate.From

var (
	// Pass 1 errors
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrExtendedInvalid = errors.New(f("extended format not allowed"))
	ErrReserveOperand  = errors.New(f("reservation count invalid"))
	ErrByteSyntax      = errors.New(f("BYTE literal must be C'...' or X'...'"))
	ErrOrgOperand      = errors.New(f("ORG operand must be a hex address"))

	// Symbol table errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrEquUnresolved  = errors.New(f("EQU operand unresolved, using own location"))

	// Pass 2 errors
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrSymbolUndefined    = errors.New(f("symbol undefined"))
	ErrWordOperand        = errors.New(f("WORD operand must be decimal"))
	ErrBaseOperand        = errors.New(f("BASE operand unresolved"))
	ErrOutOfRange         = errors.New(f("address out of range"))
	ErrProgramLength      = errors.New(f("program ends before its start address"))

	// Legacy END label rule
	ErrEndLabel = errors.New(f("label END treated as END directive"))

	// Validation errors
	ErrStartLabel      = errors.New(f("START directive requires a program name label"))
	ErrStartOperand    = errors.New(f("START operand must be a hex number"))
	ErrEndOperand      = errors.New(f("END operand must reference a valid label"))
	ErrOperandExtra    = errors.New(f("instruction takes no operand"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrLabelReferenced = errors.New(f("referenced label does not exist"))
)

// ErrLine locates an error in the source.
type ErrLine struct {
	Index  int    // Index of the line in the parsed line list.
	LineNo string // Source line number token.
	Line   string // Original line text.
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %v '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// lineError wraps err with the location of the line.
func lineError(line *SourceLine, err error) *ErrLine {
	return &ErrLine{Index: line.Index, LineNo: line.LineNo, Line: line.Text, Err: err}
}

// ErrParseNumber is returned for operands that are not numbers.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrOpcode names an unknown opcode or instruction.
type ErrOpcode struct {
	Opcode string
	Err    error
}

func (err *ErrOpcode) Error() string {
	return f("%v '%v'", err.Err, err.Opcode)
}

func (err *ErrOpcode) Unwrap() error {
	return err.Err
}

// ErrRegister names an unknown register.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("register '%v' invalid", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

// ErrSymbol names an undefined symbol.
type ErrSymbol string

func (err ErrSymbol) Error() string {
	return f("symbol '%v' undefined", string(err))
}

func (err ErrSymbol) Is(target error) bool {
	return target == ErrSymbolUndefined
}

// ErrAddressOutOfRange is returned when a target address can not be
// encoded by the instruction format.
type ErrAddressOutOfRange struct {
	Target   int64  // Resolved target address.
	Location uint32 // Location of the instruction.
	Format   Format // Format of the instruction.
}

func (err *ErrAddressOutOfRange) Error() string {
	return f("target 0x%X out of range for format %v at %04X", err.Target, err.Format, err.Location)
}

func (err *ErrAddressOutOfRange) Is(target error) bool {
	return target == ErrOutOfRange
}

// ErrOperand names an operand rejected by validation.
type ErrOperand struct {
	Operand string
	Err     error
}

func (err *ErrOperand) Error() string {
	return f("%v '%v'", err.Err, err.Operand)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}
