// Package htme packs an assembled SIC/XE program into the Header, Text,
// Modification and End records read by a loader.
package htme

import (
	"io"
	"iter"
	"slices"

	"github.com/ezrec/sicxe/internal"
	"github.com/ezrec/sicxe/sicxe"
)

// Seq iterates over the records of a program: the header, the text
// records, the modification records and the end record.
func Seq(prog *sicxe.Program) iter.Seq[Record] {
	return internal.Concat(
		internal.Once(func() Record { return header(prog) }),
		texts(prog),
		modifications(prog),
		internal.Once(func() Record { return End{First: prog.Start} }),
	)
}

// Records returns the records of a program.
func Records(prog *sicxe.Program) []Record {
	return slices.Collect(Seq(prog))
}

func header(prog *sicxe.Program) Record {
	return Header{
		Name:   prog.Name,
		Start:  prog.Start,
		Length: prog.Length(),
	}
}

// reserves returns true for directives that reserve space without code.
func reserves(line *sicxe.SourceLine) bool {
	return line.Opcode == sicxe.DIR_RESW || line.Opcode == sicxe.DIR_RESB
}

// texts packs consecutive object code into text records. A record ends
// when it is full, at a reservation or a statement without code, and
// where the next code does not follow on from the last.
func texts(prog *sicxe.Program) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		var text *Text
		var next uint32

		flush := func() bool {
			if text == nil || len(text.Code) == 0 {
				text = nil
				return true
			}
			rec := *text
			text = nil
			return yield(rec)
		}

		for n := range prog.Lines {
			line := &prog.Lines[n]
			code := line.ObjectCode

			if len(code) == 0 || reserves(line) {
				if !flush() {
					return
				}
				continue
			}

			if text != nil && line.Location != next {
				if !flush() {
					return
				}
			}

			if text != nil && len(text.Code)+len(code) > TEXT_MAX && len(code) <= TEXT_MAX {
				if !flush() {
					return
				}
			}

			addr := line.Location
			for len(code) != 0 {
				if text == nil {
					text = &Text{Start: addr}
				}
				room := TEXT_MAX - len(text.Code)
				if room == 0 {
					if !flush() {
						return
					}
					continue
				}
				chunk := min(room, len(code))
				text.Code += code[:chunk]
				addr += uint32(chunk / 2)
				code = code[chunk:]
			}

			next = line.Location + uint32(len(line.ObjectCode)/2)
		}

		flush()
	}
}

// modifications flags the address field of every format 4 instruction.
func modifications(prog *sicxe.Program) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for loc, line := range prog.Codes() {
			if !line.Extended {
				continue
			}
			if !yield(Modification{Address: loc + 1, Nibbles: 5, Sign: '+'}) {
				return
			}
		}
	}
}

// Write writes records one per line. If display is set, carets are
// replaced by blanks.
func Write(w io.Writer, records iter.Seq[Record], display bool) (err error) {
	for rec := range records {
		text := rec.String()
		if display {
			text = Display(rec)
		}
		if _, err = io.WriteString(w, text+"\n"); err != nil {
			return
		}
	}
	return
}
