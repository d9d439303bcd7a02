package sicxe

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// SymbolTable maps labels to addresses.
type SymbolTable map[string]uint32

// Lookup returns the address of a label.
func (st SymbolTable) Lookup(label string) (addr uint32, ok bool) {
	addr, ok = st[label]
	return
}

// Hex returns the address of a label as four upper case hex digits.
func (st SymbolTable) Hex(label string) (hex string, ok bool) {
	addr, ok := st[label]
	if ok {
		hex = fmt.Sprintf("%04X", addr)
	}
	return
}

// Labels returns the labels ordered by address, then by name.
func (st SymbolTable) Labels() []string {
	return slices.SortedFunc(maps.Keys(st), func(a, b string) int {
		return cmp.Or(cmp.Compare(st[a], st[b]), cmp.Compare(a, b))
	})
}

// equValue resolves the operand of an EQU: a hex literal, an already
// defined symbol, or '*' for the current location.
func (st SymbolTable) equValue(line *SourceLine) (value uint32, ok bool) {
	operand := strings.TrimSpace(line.Operand)

	if operand == "*" {
		return line.Location, true
	}

	if hex, err := strconv.ParseUint(operand, 16, 32); err == nil {
		return uint32(hex), true
	}

	value, ok = st[operand]
	return
}

// BuildSymbols derives the symbol table from located statements. Labels
// of non-EQU statements are entered first, then EQU statements are
// resolved against them. Later definitions replace earlier ones and are
// reported as duplicates; EQU operands that can not be resolved fall back
// to the statement's own location.
func BuildSymbols(lines []SourceLine) (symbols SymbolTable, diags []Diagnostic) {
	symbols = SymbolTable{}

	define := func(line *SourceLine, value uint32) {
		if _, ok := symbols[line.Label]; ok {
			diags = append(diags, warning(line, ErrLabelDuplicate))
		}
		symbols[line.Label] = value
	}

	for n := range lines {
		line := &lines[n]
		if len(strings.TrimSpace(line.Label)) == 0 || line.Opcode == DIR_EQU {
			continue
		}
		define(line, line.Location)
	}

	for n := range lines {
		line := &lines[n]
		if len(strings.TrimSpace(line.Label)) == 0 || line.Opcode != DIR_EQU {
			continue
		}
		value, ok := symbols.equValue(line)
		if !ok {
			diags = append(diags, warning(line, ErrEquUnresolved))
			value = line.Location
		}
		define(line, value)
	}

	return
}
