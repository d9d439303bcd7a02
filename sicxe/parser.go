package sicxe

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// fields splits a line on white space, keeping quoted literals such as
// C'HELLO WORLD' in a single word.
func fields(text string) (words []string) {
	var word strings.Builder
	quoted := false

	for _, r := range text {
		switch {
		case r == '\'':
			quoted = !quoted
			word.WriteRune(r)
		case unicode.IsSpace(r) && !quoted:
			if word.Len() != 0 {
				words = append(words, word.String())
				word.Reset()
			}
		default:
			word.WriteRune(r)
		}
	}

	if word.Len() != 0 {
		words = append(words, word.String())
	}

	return
}

// isMnemonic returns true if the word, less any leading '+' or '@', is a
// known instruction or directive.
func isMnemonic(word string) bool {
	if strings.HasPrefix(word, "+") || strings.HasPrefix(word, "@") {
		word = word[1:]
	}
	_, ok := operandCount(word)
	return ok
}

// takesOperand returns false only for known opcodes that take no operand.
func takesOperand(opcode string) bool {
	count, ok := operandCount(strings.TrimPrefix(opcode, "+"))
	return !ok || count > 0
}

// ParseLine splits one source line into a statement. The first word of
// the line is a line number and is discarded. Blank lines, comment lines,
// lines with fewer than two words, and lines without an opcode report
// false. The cleaned text is returned for every line that has a label or
// an opcode.
func ParseLine(text string, index int) (line SourceLine, cleaned string, ok bool) {
	words := fields(strings.TrimSpace(text))
	if len(words) < 2 {
		return
	}

	lineno := words[0]
	words = words[1:]

	if strings.HasPrefix(words[0], ".") {
		return
	}

	var label, opcode string
	if isMnemonic(words[0]) {
		opcode = words[0]
		words = words[1:]
	} else {
		label = words[0]
		words = words[1:]
		if len(words) != 0 {
			opcode = words[0]
			words = words[1:]
		}
	}

	line = SourceLine{
		Index:  index,
		LineNo: lineno,
		Label:  label,
		Text:   text,
	}

	if strings.HasPrefix(opcode, "+") {
		line.Extended = true
		opcode = opcode[1:]
	}
	line.Opcode = strings.ToUpper(opcode)

	if len(opcode) != 0 && len(words) != 0 && takesOperand(line.Opcode) {
		line.Operand = words[0]
	}

	switch {
	case strings.HasPrefix(line.Operand, "#"):
		line.Prefix = PREFIX_IMMEDIATE
	case strings.HasPrefix(line.Operand, "@"):
		line.Prefix = PREFIX_INDIRECT
	}

	cleaned = line.Cleaned()
	ok = len(line.Opcode) != 0

	return
}

// ParseSource parses an input stream into statements, and the cleaned
// text of the source (label, opcode and operand joined by single spaces).
func ParseSource(input io.Reader) (lines []SourceLine, cleaned string, err error) {
	scanner := bufio.NewScanner(input)

	var cleanedLines []string
	for scanner.Scan() {
		line, text, ok := ParseLine(scanner.Text(), len(lines))
		if len(text) != 0 {
			cleanedLines = append(cleanedLines, text)
		}
		if ok {
			lines = append(lines, line)
		}
	}

	err = scanner.Err()
	cleaned = strings.Join(cleanedLines, "\n")

	return
}
