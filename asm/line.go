package asm

import (
	"strings"
	"unicode"
)

// Kind is the classification of a source line.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_MACHINE   = Kind(0) // machine
	KIND_DIRECTIVE = Kind(1) // directive
	KIND_COMMENT   = Kind(2) // comment
	KIND_END       = Kind(3) // end
)

// ParsedLine is the decomposition of one source line.
type ParsedLine struct {
	Source  string   // Line as read.
	Tokens  []string // Fields, with the comment removed.
	Kind    Kind     // Classification.
	Label   string   // Label field, if any.
	Opcode  string   // Operation or directive field, if any.
	Operand string   // Operand field, if any.
}

// HasLabel returns true when the line defines a label.
func (pl ParsedLine) HasLabel() bool {
	return len(pl.Label) != 0
}

// Directive returns the lower case directive name of a directive line.
func (pl ParsedLine) Directive() string {
	if pl.Kind != KIND_DIRECTIVE {
		return ""
	}
	return strings.ToLower(pl.Opcode)
}

// tokenize splits a line into whitespace separated fields.
// A $(...) expression is kept as one field.
func tokenize(line string) (words []string) {
	var word strings.Builder
	depth := 0

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for n, c := range line {
		switch {
		case depth == 0 && c == '$' && strings.HasPrefix(line[n:], "$("):
			depth = -1 // Opening paren follows.
			word.WriteRune(c)
		case depth == -1 && c == '(':
			depth = 1
			word.WriteRune(c)
		case depth > 0 && c == '(':
			depth++
			word.WriteRune(c)
		case depth > 0 && c == ')':
			depth--
			word.WriteRune(c)
		case depth == 0 && unicode.IsSpace(c):
			flush()
		default:
			word.WriteRune(c)
		}
	}
	flush()

	return
}

// Classify parses a source line. It never fails; malformed lines are
// classified as well as their fields allow.
func Classify(line string) (pl ParsedLine) {
	pl.Source = line

	text, _, _ := strings.Cut(line, ";")
	pl.Tokens = tokenize(text)

	words := pl.Tokens
	switch {
	case len(words) == 0:
		pl.Kind = KIND_COMMENT
		return
	case strings.EqualFold(words[0], "halt"):
		pl.Kind = KIND_MACHINE
	case strings.EqualFold(words[0], "org"):
		pl.Kind = KIND_DIRECTIVE
		pl.Opcode = words[0]
		if len(words) > 1 {
			pl.Operand = words[1]
		}
		return
	case strings.EqualFold(words[0], "end"):
		pl.Kind = KIND_END
		return
	case len(words) <= 2:
		pl.Kind = KIND_MACHINE
	case strings.EqualFold(words[1], "dc") || strings.EqualFold(words[1], "ds"):
		pl.Kind = KIND_DIRECTIVE
	default:
		pl.Kind = KIND_MACHINE
	}

	switch len(words) {
	case 1:
		pl.Opcode = words[0]
	case 2:
		pl.Opcode = words[0]
		pl.Operand = words[1]
	default:
		pl.Label = words[0]
		pl.Opcode = words[1]
		pl.Operand = words[2]
	}

	return
}
