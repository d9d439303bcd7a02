package sicxe

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
)

func TestDiagnostic(t *testing.T) {
	assert := assert.New(t)

	line := &SourceLine{Index: 4, LineNo: "50", Opcode: "LDA", Operand: "NOWHERE"}

	diag := failure(line, ErrSymbol("NOWHERE"))
	assert.Equal(4, diag.Index)
	assert.Equal("line 50: error: symbol 'NOWHERE' undefined", diag.Error())
	assert.ErrorIs(diag, ErrSymbolUndefined)

	warn := warning(line, ErrLabelDuplicate)
	assert.Equal("line 50: warning: label duplicated", warn.Error())
	assert.Equal("unknown", Severity(7).String())

	assert.NoError(Errors(nil))
	assert.NoError(Errors([]Diagnostic{warn}))

	err := Errors([]Diagnostic{warn, diag, diag})
	var merr *multierror.Error
	if assert.ErrorAs(err, &merr) {
		assert.Equal(2, len(merr.Errors))
	}
	assert.ErrorIs(err, ErrSymbolUndefined)
}

func TestDecodeOperand(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Operand{Mode: MODE_NONE}, DecodeOperand("  "))
	assert.Equal(Operand{Mode: MODE_SIMPLE, Target: "BUF"}, DecodeOperand("BUF"))
	assert.Equal(Operand{Mode: MODE_SIMPLE, Indexed: true, Target: "BUF"}, DecodeOperand("BUF,x"))
	assert.Equal(Operand{Mode: MODE_IMMEDIATE, Target: "4096"}, DecodeOperand("#4096"))
	assert.Equal(Operand{Mode: MODE_INDIRECT, Target: "RETADR"}, DecodeOperand("@RETADR"))

	assert.Equal(byte(0b11), MODE_SIMPLE.NI())
	assert.Equal(byte(0b01), MODE_IMMEDIATE.NI())
	assert.Equal(byte(0b10), MODE_INDIRECT.NI())
	assert.Equal("indirect", MODE_INDIRECT.String())

	symbols := SymbolTable{"BUF": 0x1000}

	addr, absolute, err := DecodeOperand("BUF,X").Resolve(symbols)
	assert.NoError(err)
	assert.Equal(int64(0x1000), addr)
	assert.False(absolute)

	addr, absolute, err = DecodeOperand("#10").Resolve(symbols)
	assert.NoError(err)
	assert.Equal(int64(10), addr)
	assert.True(absolute)

	addr, absolute, err = DecodeOperand("#BUF").Resolve(symbols)
	assert.NoError(err)
	assert.Equal(int64(0x1000), addr)
	assert.False(absolute)

	addr, absolute, err = DecodeOperand("1F").Resolve(symbols)
	assert.NoError(err)
	assert.Equal(int64(0x1F), addr)
	assert.False(absolute)

	_, _, err = DecodeOperand("@NOPE").Resolve(symbols)
	assert.ErrorIs(err, ErrSymbolUndefined)
}
