package sicxe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assemble assembles a program, failing the test on a fatal error.
func assemble(t *testing.T, asm *Assembler, program ...string) *Program {
	prog, err := asm.AssembleString(joinLines(program))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

// codes returns the object code of every statement.
func codes(prog *Program) (list []string) {
	for _, line := range prog.Lines {
		list = append(list, line.ObjectCode)
	}
	return
}

func TestGenerateData(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, &Assembler{},
		"1 P START 0",
		"2 C1 BYTE C'AB'",
		"3 X1 BYTE X'1F'",
		"4 X2 BYTE X'F01'",
		"5 W1 WORD 4096",
		"6 W2 WORD -1",
		"7 R1 RESW 2",
		"8 R2 RESB 3",
		"9 END P",
	)
	assert.NoError(prog.Err())
	assert.Equal([]string{"", "4142", "1F", "0F01", "001000", "FFFFFF", "", "", ""}, codes(prog))
}

func TestGenerateFormat12(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, &Assembler{},
		"1 P START 0",
		"2 FIX",
		"3 ADDR A,X",
		"4 CLEAR X",
		"5 TIXR T",
		"6 RMO A,PC",
		"7 SHIFTL A,4",
		"8 SHIFTR S,16",
		"9 SVC 2",
		"10 COMPR a,sw",
		"11 END P",
	)
	assert.NoError(prog.Err())
	assert.Equal([]string{"", "C4", "9001", "B410", "B850", "AC08", "A403", "A84F", "B020", "A009", ""}, codes(prog))
}

func TestGenerateFormat2Errors(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]error{
		"2 ADDR A,Q":     ErrRegisterInvalid,
		"2 CLEAR":        ErrOperandMissing,
		"2 SHIFTL A":     ErrOperandMissing,
		"2 SHIFTL A,0":   ErrParseNumber("0"),
		"2 SVC sixteen":  ErrParseNumber("sixteen"),
		"2 W1 WORD many": ErrWordOperand,
	}

	for text, expected := range tests {
		prog := assemble(t, &Assembler{}, "1 P START 0", text, "3 END P")
		assert.Error(prog.Err(), text)
		assert.Equal("", prog.Lines[1].ObjectCode, text)
		if assert.Equal(1, len(prog.Diagnostics), text) {
			assert.Equal(SEVERITY_ERROR, prog.Diagnostics[0].Severity, text)
			assert.ErrorIs(prog.Diagnostics[0], expected, text)
		}
	}
}

func TestGeneratePCRelative(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, &Assembler{},
		"1 P START 202D",
		"2 J TGT",
		"3 PAD RESB 11",
		"4 TGT WORD 7",
		"5 LOOP J LOOP",
		"6 STCH TGT,X",
		"7 J @TGT",
		"8 END P",
	)
	assert.NoError(prog.Err())
	assert.Equal(uint32(0x203B), prog.Symbols["TGT"])
	assert.Equal("3F200B", prog.Lines[1].ObjectCode)
	assert.Equal("3F2FFD", prog.Lines[4].ObjectCode)
	assert.Equal("57AFF7", prog.Lines[5].ObjectCode)
	assert.Equal("3E2FF4", prog.Lines[6].ObjectCode)
}

func TestGenerateBase(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"1 P START 0",
		"2 BASE BUF",
		"3 LDA BUF",
		"4 NOBASE",
		"5 LDA BUF",
		"6 PAD RESB 4096",
		"7 BUF WORD 5",
		"8 END P",
	}

	prog := assemble(t, &Assembler{}, program...)
	assert.Equal("034000", prog.Lines[2].ObjectCode)
	assert.Equal("", prog.Lines[4].ObjectCode)

	if assert.Equal(1, len(prog.Diagnostics)) {
		diag := prog.Diagnostics[0]
		assert.Equal("5", diag.LineNo)
		assert.ErrorIs(diag, ErrOutOfRange)

		var rerr *ErrAddressOutOfRange
		if assert.ErrorAs(diag, &rerr) {
			assert.Equal(int64(0x1006), rerr.Target)
			assert.Equal(uint32(3), rerr.Location)
			assert.Equal(FORMAT_3, rerr.Format)
		}
	}

	prog = assemble(t, &Assembler{},
		"1 P START 0",
		"2 BASE ZZZ",
		"3 RSUB",
		"4 END P",
	)
	assert.NoError(prog.Err())
	if assert.Equal(1, len(prog.Warnings())) {
		assert.ErrorIs(prog.Warnings()[0], ErrBaseOperand)
	}
}

func TestGenerateDirect(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, &Assembler{},
		"1 P START 0",
		"2 FIRST WORD 1",
		"3 PAD RESB 2045",
		"4 LDA FIRST",
		"5 END P",
	)
	assert.NoError(prog.Err())
	assert.Equal(uint32(0x800), prog.Lines[3].Location)
	assert.Equal("030000", prog.Lines[3].ObjectCode)
}

func TestGenerateExtended(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, &Assembler{},
		"1 P START 0",
		"2 +JSUB RDREC",
		"3 +LDT #4096",
		"4 PAD RESB 4142",
		"5 RDREC RSUB",
		"6 END P",
	)
	assert.NoError(prog.Err())
	assert.Equal(uint32(0x1036), prog.Symbols["RDREC"])
	assert.Equal("4B101036", prog.Lines[1].ObjectCode)
	assert.Equal("75101000", prog.Lines[2].ObjectCode)
	assert.Equal("4F0000", prog.Lines[4].ObjectCode)

	prog = assemble(t, &Assembler{},
		"1 P START 0",
		"2 +LDA #-1",
		"3 END P",
	)
	assert.ErrorIs(prog.Err(), ErrOutOfRange)
	assert.Equal("", prog.Lines[1].ObjectCode)
}

func TestGenerateConstants(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"1 P START 0",
		"2 LDA #5",
		"3 RSUB",
		"4 LDA #4096",
		"5 END P",
	}

	prog := assemble(t, &Assembler{}, program...)
	assert.Equal([]string{"", "010005", "4F0000", "", ""}, codes(prog))
	assert.ErrorIs(prog.Err(), ErrOutOfRange)

	prog = assemble(t, &Assembler{RelativeConstants: true}, program...)
	assert.Equal("012002", prog.Lines[1].ObjectCode)
	assert.Equal("4F2FFA", prog.Lines[2].ObjectCode)

	prog = assemble(t, &Assembler{},
		"1 P START 0",
		"2 LDA #-1",
		"3 LDA #-2048",
		"4 LDA #4095",
		"5 END P",
	)
	assert.Equal([]string{"", "", "", "010FFF", ""}, codes(prog))
	if assert.Equal(2, len(prog.Diagnostics)) {
		for _, diag := range prog.Diagnostics {
			assert.Equal(SEVERITY_ERROR, diag.Severity)
			assert.ErrorIs(diag, ErrOutOfRange)
		}
		assert.Equal("2", prog.Diagnostics[0].LineNo)
		assert.Equal("3", prog.Diagnostics[1].LineNo)
	}
}

func TestGenerateUndefined(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, &Assembler{},
		"1 P START 0",
		"2 LDA NOWHERE",
		"3 END P",
	)
	assert.Equal("", prog.Lines[1].ObjectCode)
	if assert.Equal(1, len(prog.Diagnostics)) {
		assert.ErrorIs(prog.Diagnostics[0], ErrSymbolUndefined)
		assert.ErrorIs(prog.Diagnostics[0], ErrSymbol("NOWHERE"))
	}
}

func TestGenerateUnknownInstruction(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"1 P START 0",
		"2 FOO BAR BAZ",
		"3 RSUB",
		"4 END P",
	}

	prog := assemble(t, &Assembler{LenientOpcodes: true}, program...)
	assert.Equal([]string{"", "", "4F0000", ""}, codes(prog))
	if assert.Equal(2, len(prog.Diagnostics)) {
		assert.ErrorIs(prog.Diagnostics[0], ErrOpcodeUnknown)
		assert.ErrorIs(prog.Diagnostics[1], ErrInstructionUnknown)
	}

	prog, err := (&Assembler{LenientOpcodes: true, StrictInstructions: true}).AssembleString(joinLines(program))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrInstructionUnknown)
}
