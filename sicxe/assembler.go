// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sicxe

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Assembler is a two pass assembler for SIC/XE source. It holds only
// configuration; every run keeps its own state, so one Assembler may be
// used from several goroutines.
type Assembler struct {
	Verbose bool // If set, traces each statement as it is assembled.

	// LenientOpcodes reports unknown opcodes in pass 1 as diagnostics
	// instead of aborting the assembly.
	LenientOpcodes bool
	// StrictInstructions aborts pass 2 on an unknown instruction instead
	// of reporting it and leaving the object code empty.
	StrictInstructions bool
	// RelativeConstants resolves immediate constants and empty operands
	// PC-relative or base-relative like any other target.
	RelativeConstants bool
	// DisableEndLabelFixup turns off the rewrite of lines labelled END.
	DisableEndLabelFixup bool

	Logger logrus.FieldLogger // Logger to use, or the logrus standard logger if nil.
}

func (asm *Assembler) log() logrus.FieldLogger {
	if asm.Logger == nil {
		return logrus.StandardLogger()
	}
	return asm.Logger
}

// trace logs a statement when verbose.
func (asm *Assembler) trace(line *SourceLine, format string, args ...any) {
	if !asm.Verbose {
		return
	}
	asm.log().WithFields(logrus.Fields{
		"line": line.LineNo,
		"loc":  line.Loc(),
		"op":   line.Mnemonic(),
	}).Infof(format, args...)
}

// report logs a diagnostic.
func (asm *Assembler) report(diag Diagnostic) {
	entry := asm.log().WithField("line", diag.LineNo)
	if diag.Severity == SEVERITY_ERROR {
		entry.Errorf("%v", diag.Err)
	} else {
		entry.Warnf("%v", diag.Err)
	}
}

// Assemble parses, locates and encodes a source stream into a Program.
// Fatal errors abort the run and are returned as *ErrLine; soft problems
// are collected in Program.Diagnostics.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	lines, cleaned, err := ParseSource(input)
	if err != nil {
		return
	}

	if asm.Verbose {
		asm.log().Infof("parsed %v statements", len(lines))
	}

	located, diags, err := asm.Locate(lines)
	if err != nil {
		return
	}

	symbols, symbolDiags := BuildSymbols(located)
	for _, diag := range symbolDiags {
		asm.report(diag)
	}
	diags = append(diags, symbolDiags...)

	generated, codeDiags, err := asm.Generate(located, symbols)
	if err != nil {
		return
	}
	diags = append(diags, codeDiags...)

	prog = NewProgram(generated, symbols)
	if prog.End < prog.Start {
		diag := warning(&generated[len(generated)-1], ErrProgramLength)
		asm.report(diag)
		diags = append(diags, diag)
	}

	prog.Cleaned = cleaned
	prog.Diagnostics = diags

	return
}

// AssembleString assembles source text.
func (asm *Assembler) AssembleString(source string) (prog *Program, err error) {
	return asm.Assemble(strings.NewReader(source))
}
