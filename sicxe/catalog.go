package sicxe

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Format is an instruction encoding width.
type Format int

const (
	FORMAT_1 = Format(1) // 1 byte, opcode only
	FORMAT_2 = Format(2) // 2 bytes, opcode and two registers
	FORMAT_3 = Format(3) // 3 bytes, nixbpe and 12 bit displacement
	FORMAT_4 = Format(4) // 4 bytes, nixbpe and 20 bit address
)

// String returns the format as its width.
func (format Format) String() string {
	switch format {
	case FORMAT_1:
		return "1"
	case FORMAT_2:
		return "2"
	case FORMAT_3:
		return "3"
	case FORMAT_4:
		return "4"
	}
	return "?"
}

// FormatSet is a bit set of allowed formats.
type FormatSet uint8

// Has returns true if the format is a member of the set.
func (fs FormatSet) Has(format Format) bool {
	return fs&(1<<uint(format)) != 0
}

// Formats lists the members of the set, narrowest first.
func (fs FormatSet) Formats() (formats []Format) {
	for _, format := range []Format{FORMAT_1, FORMAT_2, FORMAT_3, FORMAT_4} {
		if fs.Has(format) {
			formats = append(formats, format)
		}
	}
	return
}

// String joins the formats with '/', as in "3/4".
func (fs FormatSet) String() string {
	var parts []string
	for _, format := range fs.Formats() {
		parts = append(parts, format.String())
	}
	return strings.Join(parts, "/")
}

func formats(list ...Format) (fs FormatSet) {
	for _, format := range list {
		fs |= 1 << uint(format)
	}
	return
}

var (
	set1  = formats(FORMAT_1)
	set2  = formats(FORMAT_2)
	set34 = formats(FORMAT_3, FORMAT_4)
)

// InstructionSpec describes one machine instruction.
type InstructionSpec struct {
	Mnemonic string    // Upper case mnemonic.
	Opcode   byte      // Opcode byte, low two bits clear.
	Formats  FormatSet // Allowed encodings.
	Operands int       // Number of operands taken, 0 for none.
}

// Format returns the narrowest format of the instruction, or FORMAT_4
// when extended is set and the instruction allows it.
func (spec InstructionSpec) Format(extended bool) Format {
	if extended && spec.Formats.Has(FORMAT_4) {
		return FORMAT_4
	}
	return spec.Formats.Formats()[0]
}

// Size returns the encoded size in bytes.
func (spec InstructionSpec) Size(extended bool) uint32 {
	return uint32(spec.Format(extended))
}

func op1(mnemonic string, opcode byte) InstructionSpec {
	return InstructionSpec{Mnemonic: mnemonic, Opcode: opcode, Formats: set1}
}

func op2(mnemonic string, opcode byte, operands int) InstructionSpec {
	return InstructionSpec{Mnemonic: mnemonic, Opcode: opcode, Formats: set2, Operands: operands}
}

func op3(mnemonic string, opcode byte) InstructionSpec {
	return InstructionSpec{Mnemonic: mnemonic, Opcode: opcode, Formats: set34, Operands: 1}
}

// instructionMap is the SIC/XE instruction catalog.
var instructionMap = map[string]InstructionSpec{}

func init() {
	for _, spec := range []InstructionSpec{
		op3("ADD", 0x18),
		op3("ADDF", 0x58),
		op2("ADDR", 0x90, 2),
		op3("AND", 0x40),
		op2("CLEAR", 0xB4, 1),
		op3("COMP", 0x28),
		op3("COMPF", 0x88),
		op2("COMPR", 0xA0, 2),
		op3("DIV", 0x24),
		op3("DIVF", 0x64),
		op2("DIVR", 0x9C, 2),
		op1("FIX", 0xC4),
		op1("FLOAT", 0xC0),
		op1("HIO", 0xF4),
		op3("J", 0x3C),
		op3("JEQ", 0x30),
		op3("JGT", 0x34),
		op3("JLT", 0x38),
		op3("JSUB", 0x48),
		op3("LDA", 0x00),
		op3("LDB", 0x68),
		op3("LDCH", 0x50),
		op3("LDF", 0x70),
		op3("LDL", 0x08),
		op3("LDS", 0x6C),
		op3("LDT", 0x74),
		op3("LDX", 0x04),
		op3("LPS", 0xD0),
		op3("MUL", 0x20),
		op3("MULF", 0x60),
		op2("MULR", 0x98, 2),
		op1("NORM", 0xC8),
		op3("OR", 0x44),
		op3("RD", 0xD8),
		op2("RMO", 0xAC, 2),
		{Mnemonic: "RSUB", Opcode: 0x4C, Formats: set34},
		op2("SHIFTL", 0xA4, 2),
		op2("SHIFTR", 0xA8, 2),
		op1("SIO", 0xF0),
		op3("SSK", 0xEC),
		op3("STA", 0x0C),
		op3("STB", 0x78),
		op3("STCH", 0x54),
		op3("STF", 0x80),
		op3("STI", 0xD4),
		op3("STL", 0x14),
		op3("STS", 0x7C),
		op3("STSW", 0xE8),
		op3("STT", 0x84),
		op3("STX", 0x10),
		op3("SUB", 0x1C),
		op3("SUBF", 0x5C),
		op2("SUBR", 0x94, 2),
		op2("SVC", 0xB0, 1),
		op3("TD", 0xE0),
		op1("TIO", 0xF8),
		op3("TIX", 0x2C),
		op2("TIXR", 0xB8, 1),
		op3("WD", 0xDC),
	} {
		instructionMap[spec.Mnemonic] = spec
	}
}

// LookupInstruction finds an instruction by mnemonic, ignoring case.
func LookupInstruction(mnemonic string) (spec InstructionSpec, ok bool) {
	spec, ok = instructionMap[strings.ToUpper(mnemonic)]
	return
}

// Instructions iterates over the catalog in mnemonic order.
func Instructions() iter.Seq[InstructionSpec] {
	return func(yield func(InstructionSpec) bool) {
		for _, mnemonic := range slices.Sorted(maps.Keys(instructionMap)) {
			if !yield(instructionMap[mnemonic]) {
				return
			}
		}
	}
}

// Assembler directives.
const (
	DIR_START  = "START"
	DIR_END    = "END"
	DIR_BYTE   = "BYTE"
	DIR_WORD   = "WORD"
	DIR_RESB   = "RESB"
	DIR_RESW   = "RESW"
	DIR_BASE   = "BASE"
	DIR_NOBASE = "NOBASE"
	DIR_EQU    = "EQU"
	DIR_ORG    = "ORG"
	DIR_LTORG  = "LTORG"
)

// directiveOperands maps each directive to its operand count.
var directiveOperands = map[string]int{
	DIR_START:  1,
	DIR_END:    1,
	DIR_BYTE:   1,
	DIR_WORD:   1,
	DIR_RESB:   1,
	DIR_RESW:   1,
	DIR_BASE:   1,
	DIR_NOBASE: 0,
	DIR_EQU:    1,
	DIR_ORG:    1,
	DIR_LTORG:  0,
}

// IsDirective returns true if the word is an assembler directive, ignoring case.
func IsDirective(word string) bool {
	_, ok := directiveOperands[strings.ToUpper(word)]
	return ok
}

// Directives returns the directive names in alphabetical order.
func Directives() []string {
	return slices.Sorted(maps.Keys(directiveOperands))
}

// operandCount returns the number of operands an instruction or directive
// takes, and false if the word is neither.
func operandCount(word string) (count int, ok bool) {
	word = strings.ToUpper(word)
	if spec, found := instructionMap[word]; found {
		return spec.Operands, true
	}
	count, ok = directiveOperands[word]
	return
}
