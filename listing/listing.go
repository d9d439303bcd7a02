// Package listing exports assembled statements and symbol tables as text
// tables, CSV or JSON.
package listing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ezrec/sicxe/sicxe"
)

// COLUMN_WIDTH is the width of a text table column.
const COLUMN_WIDTH = 15

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Column is one column of a table.
type Column struct {
	Key    string // JSON key.
	Header string // Column title.
}

// Table is a titled set of rows.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// Code returns the table of assembled statements.
func Code(prog *sicxe.Program) (table *Table) {
	table = &Table{
		Title: "Assembled SIC/XE Program",
		Columns: []Column{
			{"loc", "LOC"},
			{"label", "Label"},
			{"opcode", "Opcode"},
			{"operand", "Operand"},
			{"objectCode", "Object Code"},
		},
	}

	for _, line := range prog.Lines {
		table.Rows = append(table.Rows, []string{
			line.Loc(), line.Label, line.Mnemonic(), line.Operand, line.ObjectCode,
		})
	}

	return
}

// Symbols returns the symbol table, ordered by address.
func Symbols(symbols sicxe.SymbolTable) (table *Table) {
	table = &Table{
		Title: "Symbol Table",
		Columns: []Column{
			{"symbol", "Symbol"},
			{"address", "Address"},
		},
	}

	for _, label := range symbols.Labels() {
		hex, _ := symbols.Hex(label)
		table.Rows = append(table.Rows, []string{label, hex})
	}

	return
}

// Instructions returns the instruction catalog.
func Instructions() (table *Table) {
	table = &Table{
		Title: "SIC/XE Instruction Set",
		Columns: []Column{
			{"mnemonic", "Mnemonic"},
			{"opcode", "Opcode"},
			{"format", "Format"},
		},
	}

	for spec := range sicxe.Instructions() {
		table.Rows = append(table.Rows, []string{
			spec.Mnemonic, fmt.Sprintf("%02X", spec.Opcode), spec.Formats.String(),
		})
	}

	return
}

// WriteText writes the table with the title, a header row, a rule and the
// rows, every cell padded to COLUMN_WIDTH.
func (table *Table) WriteText(w io.Writer) (err error) {
	var sb strings.Builder

	sb.WriteString(table.Title + "\n\n")

	for _, col := range table.Columns {
		fmt.Fprintf(&sb, "%-*s", COLUMN_WIDTH, col.Header)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(strings.Repeat("-", COLUMN_WIDTH), len(table.Columns)) + "\n")

	for _, row := range table.Rows {
		for _, cell := range row {
			fmt.Fprintf(&sb, "%-*s", COLUMN_WIDTH, cell)
		}
		sb.WriteString("\n")
	}

	_, err = io.WriteString(w, sb.String())
	return
}

// WriteCSV writes the table as CSV with a header record.
func (table *Table) WriteCSV(w io.Writer) (err error) {
	cw := csv.NewWriter(w)

	headers := make([]string, len(table.Columns))
	for n, col := range table.Columns {
		headers[n] = col.Header
	}

	if err = cw.Write(headers); err != nil {
		return
	}
	if err = cw.WriteAll(table.Rows); err != nil {
		return
	}

	return cw.Error()
}

// WriteJSON writes the table as a JSON array of objects keyed by column.
func (table *Table) WriteJSON(w io.Writer) (err error) {
	objects := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		obj := make(map[string]string, len(table.Columns))
		for n, col := range table.Columns {
			if n < len(row) {
				obj[col.Key] = row[n]
			}
		}
		objects = append(objects, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(objects)
}

// Write writes the table in the named format: text, csv or json.
func (table *Table) Write(w io.Writer, format string) (err error) {
	switch strings.ToLower(format) {
	case "", "text", "txt":
		return table.WriteText(w)
	case "csv":
		return table.WriteCSV(w)
	case "json":
		return table.WriteJSON(w)
	}
	return ErrFormat(format)
}
