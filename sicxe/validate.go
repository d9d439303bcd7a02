package sicxe

import (
	"strconv"
	"strings"
)

// Validate checks parsed statements for mistakes the passes would accept
// silently or report late. All findings are error level.
func Validate(lines []SourceLine) (diags []Diagnostic) {
	labels := map[string]bool{}
	for _, line := range lines {
		if label := strings.TrimSpace(line.Label); len(label) != 0 {
			labels[label] = true
		}
	}

	for n := range lines {
		line := &lines[n]
		operand := strings.TrimSpace(line.Operand)

		problem := func(err error) {
			diags = append(diags, failure(line, err))
		}

		switch {
		case line.Opcode == DIR_START:
			if n != 0 {
				break
			}
			if len(line.Label) == 0 {
				problem(ErrStartLabel)
			}
			if _, err := strconv.ParseUint(operand, 16, 32); err != nil {
				problem(&ErrOperand{Operand: operand, Err: ErrStartOperand})
			}
		case line.Opcode == DIR_END:
			if !labels[operand] {
				problem(&ErrOperand{Operand: operand, Err: ErrEndOperand})
			}
		case line.IsDirective():
		default:
			spec, ok := LookupInstruction(line.Opcode)
			if !ok {
				problem(&ErrOpcode{Opcode: line.Mnemonic(), Err: ErrOpcodeUnknown})
				break
			}
			switch {
			case spec.Operands == 0 && len(operand) != 0:
				problem(&ErrOperand{Operand: operand, Err: ErrOperandExtra})
			case spec.Operands != 0 && len(operand) == 0:
				problem(ErrOperandMissing)
			case spec.Formats.Has(FORMAT_3) && len(operand) != 0:
				if referenced(operand) && !labels[operand] {
					problem(&ErrOperand{Operand: operand, Err: ErrLabelReferenced})
				}
			}
		}
	}

	return
}

// referenced returns true if a format 3 operand names a label: it has no
// addressing prefix, no index and is neither a decimal number nor a hex
// address.
func referenced(operand string) bool {
	if strings.HasPrefix(operand, "#") || strings.HasPrefix(operand, "@") || strings.Contains(operand, ",") {
		return false
	}
	if _, err := strconv.ParseFloat(operand, 64); err == nil {
		return false
	}
	_, err := strconv.ParseUint(operand, 16, 32)
	return err != nil
}
