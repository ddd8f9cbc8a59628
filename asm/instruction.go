package asm

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/abishjha/vc3600/cpu"
	"github.com/abishjha/vc3600/internal"
	"github.com/abishjha/vc3600/io"
)

const (
	PLACEHOLDER_OPERAND = "????"   // Operand digits that could not be resolved.
	PLACEHOLDER_WORD    = "??????" // Word that could not be encoded.
)

// Emission is the kind of output a translated line produces.
type Emission int

//go:generate go tool stringer -linecomment -type=Emission
const (
	EMIT_NONE = Emission(0) // none
	EMIT_WORD = Emission(1) // word
	EMIT_END  = Emission(2) // end
)

// CodeWord is one machine word destined for the emulator.
type CodeWord struct {
	Location int    // Memory location.
	Encoded  string // Six digit encoded word.
	Opcode   string // Operation or directive that produced the word.
	LineNo   int    // Source line number.
}

// Word decodes the encoded text.
func (cw CodeWord) Word() (cpu.Word, error) {
	return cpu.ParseWord(cw.Encoded)
}

// Row is one line of the translation listing.
type Row struct {
	Location int
	Contents string
	Source   string
	Located  bool // Set when the line occupies a location.
}

// String formats the row in the listing columns.
func (row Row) String() string {
	if !row.Located {
		return fmt.Sprintf("%24s%s", "", row.Source)
	}
	return fmt.Sprintf("%-12d%-12s%s", row.Location, row.Contents, row.Source)
}

// Translation is the result of translating one source line.
type Translation struct {
	Emission Emission   // What the line produced.
	Word     CodeWord   // Emitted word, valid for EMIT_WORD.
	Row      Row        // Listing row.
	Parsed   ParsedLine // Decomposition of the line.
}

// Translator converts source lines into machine words.
type Translator struct {
	Symbols *SymbolTable   // Labels from Pass I.
	Errors  *io.Log        // Error log, if any.
	Define  map[string]int // Predefined constants.
	Parsed  ParsedLine     // Most recently translated line.
	Faults  []error        // Errors recorded since the last reset.
}

// defines iterates the constants visible to location fields.
func (tr *Translator) defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(sysDefine), maps.All(tr.Define))
}

// operandDefines iterates the constants visible to operand fields.
func (tr *Translator) operandDefines() iter.Seq2[string, int] {
	seq := tr.defines()
	if tr.Symbols != nil {
		seq = internal.IterSeq2Concat(seq, tr.Symbols.Defined())
	}
	return seq
}

// record notes an error at a location.
func (tr *Translator) record(location int, err error) {
	err = &ErrLocation{Location: location, Err: err}
	tr.Faults = append(tr.Faults, err)
	if tr.Errors != nil {
		tr.Errors.Record(err.Error())
	}
}

// directiveValue returns the value field of an org or ds directive.
func (tr *Translator) directiveValue(pl ParsedLine) (value int, err error) {
	value, err = evaluate(pl.Operand, tr.defines())
	if err != nil {
		return
	}

	if value < 0 || value > cpu.MEMSZ {
		err = ErrValueInvalid
	}
	return
}

// NextLocation returns the location following a line.
// It depends only on the line and the predefined constants, so both passes
// compute the same locations.
func (tr *Translator) NextLocation(pl ParsedLine, location int) int {
	switch pl.Kind {
	case KIND_COMMENT, KIND_END:
		return location
	case KIND_DIRECTIVE:
		switch pl.Directive() {
		case "org":
			value, err := tr.directiveValue(pl)
			if err == nil {
				return value
			}
		case "ds":
			value, err := tr.directiveValue(pl)
			if err == nil {
				return location + value
			}
		}
	}

	return location + 1
}

// operand resolves an operand field to an address.
func (tr *Translator) operand(word string) (address int, err error) {
	if isExpression(word) {
		address, err = evaluate(word, tr.operandDefines())
		if err != nil {
			return
		}
	} else {
		var ok bool
		if tr.Symbols != nil {
			address, ok = tr.Symbols.Lookup(word)
		}
		if !ok {
			err = ErrLabelUndefined
			return
		}
		if address == MULTIPLY_DEFINED {
			err = ErrLabelMultiple
			return
		}
	}

	if address < 0 || address >= cpu.MEMSZ {
		err = ErrOperandRange
	}
	return
}

// machine encodes a machine instruction.
func (tr *Translator) machine(pl ParsedLine, location int) (contents string) {
	op, ok := cpu.OperationOf(pl.Opcode)

	switch len(pl.Tokens) {
	case 1:
		if !ok {
			tr.record(location, ErrOperationBad)
			return PLACEHOLDER_WORD
		}
		if op == cpu.OP_HALT {
			return cpu.Encode(cpu.OP_HALT, 0).String()
		}
		tr.record(location, ErrOperandNeeded)
		return fmt.Sprintf("%02d", int(op)) + PLACEHOLDER_OPERAND
	case 2, 3:
		if !ok {
			tr.record(location, ErrOperationBad)
			return PLACEHOLDER_WORD
		}
		address, err := tr.operand(pl.Operand)
		if err != nil {
			tr.record(location, err)
			return fmt.Sprintf("%02d", int(op)) + PLACEHOLDER_OPERAND
		}
		return cpu.Encode(op, address).String()
	default:
		return PLACEHOLDER_WORD
	}
}

// constant encodes the value of a dc directive.
func (tr *Translator) constant(pl ParsedLine, location int) (contents string) {
	value, err := evaluate(pl.Operand, tr.defines())
	if err != nil {
		tr.record(location, ErrConstantInvalid)
		return PLACEHOLDER_WORD
	}

	if value > cpu.ACC_MAX || value < -cpu.ACC_MAX {
		tr.record(location, ErrConstantRange)
		return PLACEHOLDER_WORD
	}

	return cpu.Word(value).String()
}

// Translate translates one source line at a location.
// Errors are recorded and translation continues with placeholder digits,
// so the listing stays aligned with the source.
func (tr *Translator) Translate(line string, location int) (result Translation) {
	pl := Classify(line)
	tr.Parsed = pl

	result.Parsed = pl
	result.Row = Row{Location: location, Source: line}

	if len(pl.Tokens) > 3 {
		tr.record(location, ErrFieldsExcess)
	}

	switch pl.Kind {
	case KIND_MACHINE:
		contents := tr.machine(pl, location)
		result.Row.Contents = contents
		result.Row.Located = true
		result.Emission = EMIT_WORD
		result.Word = CodeWord{
			Location: location,
			Encoded:  contents,
			Opcode:   strings.ToLower(pl.Opcode),
		}
	case KIND_DIRECTIVE:
		result.Row.Located = true
		switch pl.Directive() {
		case "dc":
			contents := tr.constant(pl, location)
			result.Row.Contents = contents
			result.Emission = EMIT_WORD
			result.Word = CodeWord{
				Location: location,
				Encoded:  contents,
				Opcode:   pl.Directive(),
			}
		default:
			_, err := tr.directiveValue(pl)
			if err != nil {
				tr.record(location, ErrValueInvalid)
			}
		}
	case KIND_END:
		result.Emission = EMIT_END
	}

	return
}
