package sicxe

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// startAddress parses the hex operand of START, defaulting to 0.
func startAddress(operand string) uint32 {
	value, err := strconv.ParseUint(strings.TrimSpace(operand), 16, 32)
	if err != nil {
		return 0
	}
	return uint32(value)
}

// endLabelFixup rewrites a statement labelled END into the END directive.
// The word in the opcode field moves to the operand, and an operand of
// "End" on a line mentioning 0030 becomes 0030, the start address of the
// file handling template.
//
// ParseLine always reads END as the directive, so only statements built
// by callers of Locate can carry the label END.
func endLabelFixup(line *SourceLine) bool {
	if line.Label != DIR_END {
		return false
	}

	if len(line.Operand) == 0 && line.Opcode != DIR_END {
		line.Operand = line.Opcode
	}
	line.Label = ""
	line.Opcode = DIR_END
	line.Extended = false

	if strings.EqualFold(line.Operand, "End") && strings.Contains(line.Text, "0030") {
		line.Operand = "0030"
	}

	return true
}

// Locate runs pass 1, assigning a location to every statement. The input
// is not modified. Invalid reservations, BYTE literals, ORG operands and
// unknown opcodes abort the pass with an *ErrLine.
func (asm *Assembler) Locate(lines []SourceLine) (located []SourceLine, diags []Diagnostic, err error) {
	located = slices.Clone(lines)

	defer func() {
		if err != nil {
			located = nil
			diags = nil
		}
	}()

	var locctr uint32
	if len(located) != 0 && located[0].Opcode == DIR_START {
		locctr = startAddress(located[0].Operand)
	}

	for n := range located {
		line := &located[n]

		if !asm.DisableEndLabelFixup && endLabelFixup(line) {
			diag := warning(line, ErrEndLabel)
			asm.report(diag)
			diags = append(diags, diag)
		}

		line.Location = locctr
		line.Located = true

		size, serr := LineSize(*line)
		if serr != nil {
			if asm.LenientOpcodes && errors.Is(serr, ErrOpcodeUnknown) {
				diag := failure(line, serr)
				asm.report(diag)
				diags = append(diags, diag)
				continue
			}
			err = lineError(line, serr)
			return
		}

		if line.Opcode == DIR_ORG {
			value, perr := strconv.ParseUint(strings.TrimSpace(line.Operand), 16, 32)
			if perr != nil {
				err = lineError(line, ErrOrgOperand)
				return
			}
			locctr = uint32(value)
		} else {
			locctr += size
		}

		asm.trace(line, "size %v", size)
	}

	return
}
