package sicxe

import (
	"iter"
)

// DefaultProgramName is used when the first statement has no label.
const DefaultProgramName = "PROGRAM"

// Program is an assembled unit.
type Program struct {
	Name        string       // Label of the first statement.
	Start       uint32       // Location of the first statement.
	End         uint32       // Location after the last statement.
	Lines       []SourceLine // Assembled statements.
	Symbols     SymbolTable  // Symbol table.
	Cleaned     string       // Cleaned source text.
	Diagnostics []Diagnostic // Non-fatal problems.
}

// NewProgram builds a program from assembled statements.
func NewProgram(lines []SourceLine, symbols SymbolTable) (prog *Program) {
	prog = &Program{
		Name:    DefaultProgramName,
		Lines:   lines,
		Symbols: symbols,
	}

	if len(lines) != 0 {
		if len(lines[0].Label) != 0 {
			prog.Name = lines[0].Label
		}
		prog.Start = lines[0].Location
	}

	prog.End = EndAddress(lines)

	return
}

// EndAddress returns the location following the last located statement.
func EndAddress(lines []SourceLine) uint32 {
	for n := len(lines) - 1; n >= 0; n-- {
		line := lines[n]
		if !line.Located {
			continue
		}
		size, err := LineSize(line)
		if err != nil {
			size = 0
		}
		return line.Location + size
	}

	return 0
}

// Length returns the program length in bytes, or 0 if the program ends
// below its start address.
func (prog *Program) Length() uint32 {
	if prog.End < prog.Start {
		return 0
	}
	return prog.End - prog.Start
}

// Err returns the error level diagnostics as a single error, or nil.
func (prog *Program) Err() error {
	return Errors(prog.Diagnostics)
}

// Warnings returns the warning level diagnostics.
func (prog *Program) Warnings() (warnings []Diagnostic) {
	for _, diag := range prog.Diagnostics {
		if diag.Severity == SEVERITY_WARNING {
			warnings = append(warnings, diag)
		}
	}
	return
}

// Codes iterates over the statements that carry object code.
func (prog *Program) Codes() iter.Seq2[uint32, SourceLine] {
	return func(yield func(loc uint32, line SourceLine) bool) {
		for _, line := range prog.Lines {
			if len(line.ObjectCode) == 0 {
				continue
			}
			if !yield(line.Location, line) {
				return
			}
		}
	}
}
