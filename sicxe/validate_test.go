package sicxe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(Validate(parse(t, hello...)))

	assert.Empty(Validate(parse(t,
		"1 P START 1000",
		"2 LDA #5",
		"3 LDA BUF,X",
		"4 LDA 100",
		"5 J @BUF",
		"6 STA FFF",
		"7 BUF RESW 1",
		"8 END P",
	)))

	diags := Validate(parse(t,
		"1 START 0",
		"2 LDA",
		"3 LDA NOPE",
		"4 RSUB",
		"5 FOO BAR",
		"6 END NOPE",
	))

	expected := []struct {
		LineNo string
		Err    error
	}{
		{"1", ErrStartLabel},
		{"2", ErrOperandMissing},
		{"3", ErrLabelReferenced},
		{"5", ErrOpcodeUnknown},
		{"6", ErrEndOperand},
	}

	if assert.Equal(len(expected), len(diags)) {
		for n, diag := range diags {
			assert.Equal(expected[n].LineNo, diag.LineNo)
			assert.Equal(SEVERITY_ERROR, diag.Severity)
			assert.ErrorIs(diag, expected[n].Err)
		}
	}
	assert.Error(Errors(diags))
}

func TestValidateOperands(t *testing.T) {
	assert := assert.New(t)

	diags := Validate([]SourceLine{
		{LineNo: "1", Label: "P", Opcode: DIR_START, Operand: "XYZ"},
		{LineNo: "2", Opcode: "RSUB", Operand: "X"},
		{LineNo: "3", Opcode: DIR_END, Operand: "P"},
	})

	if assert.Equal(2, len(diags)) {
		assert.ErrorIs(diags[0], ErrStartOperand)
		assert.ErrorIs(diags[1], ErrOperandExtra)

		var oerr *ErrOperand
		if assert.ErrorAs(diags[1], &oerr) {
			assert.Equal("X", oerr.Operand)
		}
	}
}

func TestValidateAgreesWithGenerate(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"1 P START 0",
		"2 STA FFF",
		"3 LDA CAFE",
		"4 LDA NOPE",
		"5 END P",
	}

	diags := Validate(parse(t, program...))
	if assert.Equal(1, len(diags)) {
		assert.Equal("4", diags[0].LineNo)
		assert.ErrorIs(diags[0], ErrLabelReferenced)
	}

	prog := assemble(t, &Assembler{}, program...)
	assert.Equal("0F0FFF", prog.Lines[1].ObjectCode)
	if assert.Equal(2, len(prog.Diagnostics)) {
		assert.ErrorIs(prog.Diagnostics[0], ErrOutOfRange)
		assert.Equal("3", prog.Diagnostics[0].LineNo)
		assert.ErrorIs(prog.Diagnostics[1], ErrSymbolUndefined)
		assert.Equal("4", prog.Diagnostics[1].LineNo)
	}
}
