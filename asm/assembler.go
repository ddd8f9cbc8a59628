// Copyright 2025, Abish Jha

package asm

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"

	vio "github.com/abishjha/vc3600/io"
)

// Assembler is a two pass assembler for the VC-3600.
// It owns all state of an assembly run.
type Assembler struct {
	Verbose bool      // If set, verbosely logs the assembler actions.
	Listing io.Writer // Listing output, if any.

	Symbols SymbolTable // Labels found by Pass I.
	Errors  *vio.Log    // Error log, reset by Pass II.

	predefine  map[string]int
	translator Translator
}

// Predefine defines a constant for $(...) expressions.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// PredefineString defines a constant from its decimal text.
func (asm *Assembler) PredefineString(name string, text string) (err error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	asm.Predefine(name, value)
	return
}

// listing returns the listing writer.
func (asm *Assembler) listing() io.Writer {
	if asm.Listing == nil {
		return io.Discard
	}
	return asm.Listing
}

// Reset clears the state of the previous run.
func (asm *Assembler) Reset() {
	if asm.Errors == nil {
		asm.Errors = &vio.Log{}
	}

	asm.Symbols.Reset()
	asm.Errors.Reset()

	asm.translator = Translator{
		Symbols: &asm.Symbols,
		Errors:  asm.Errors,
		Define:  asm.predefine,
	}
}

// Translator returns the translator of the current run.
func (asm *Assembler) Translator() *Translator {
	return &asm.translator
}

// PassI records the location of every label.
// A missing end statement is left for Pass II to report.
func (asm *Assembler) PassI(src vio.Source) {
	if asm.translator.Symbols == nil {
		asm.Reset()
	}
	tr := &asm.translator

	location := 0
	lineno := 0
	for line, ok := src.NextLine(); ok; line, ok = src.NextLine() {
		lineno++
		if asm.Verbose {
			log.Printf("pass1 %v: %v", lineno, line)
		}

		pl := Classify(line)
		if pl.Kind == KIND_END {
			return
		}

		if pl.Kind == KIND_MACHINE || pl.Kind == KIND_DIRECTIVE {
			if pl.HasLabel() {
				asm.Symbols.Add(pl.Label, location)
			}
		}

		location = tr.NextLocation(pl, location)
	}
}

// PassII translates the source into a Program and prints the listing.
func (asm *Assembler) PassII(src vio.Source) (prog *Program) {
	if asm.translator.Symbols == nil {
		asm.Reset()
	}
	tr := &asm.translator
	w := asm.listing()

	src.Rewind()
	asm.Errors.Reset()
	tr.Faults = nil

	prog = &Program{}

	fmt.Fprintf(w, "%-12s%-12s%s\n", "Location", "Contents", "Original Statement")

	location := 0
	lineno := 0
	is_end := false
	for {
		line, ok := src.NextLine()
		if !ok {
			if !is_end {
				tr.record(location, ErrEndMissing)
			}
			break
		}
		lineno++

		if asm.Verbose {
			log.Printf("pass2 %v: %v", lineno, line)
		}

		if is_end {
			pl := Classify(line)
			if pl.Kind != KIND_COMMENT {
				tr.record(location, ErrLinesAfterEnd)
				break
			}
			fmt.Fprintln(w, Row{Source: line})
			continue
		}

		result := tr.Translate(line, location)
		fmt.Fprintln(w, result.Row)

		switch result.Emission {
		case EMIT_END:
			is_end = true
		case EMIT_WORD:
			word := result.Word
			word.LineNo = lineno
			prog.Words = append(prog.Words, word)
		}

		location = tr.NextLocation(result.Parsed, location)
	}

	if !asm.Errors.IsEmpty() {
		asm.Errors.Flush(w)
	}

	return
}

// Assemble runs both passes over a source.
// The listing is written to Listing; when errors were recorded the
// returned error is an *ErrAssembly.
func (asm *Assembler) Assemble(src vio.Source) (prog *Program, err error) {
	asm.Reset()

	asm.PassI(src)

	if asm.Listing != nil {
		err = asm.Symbols.Fprint(asm.Listing)
		if err != nil {
			return
		}
		fmt.Fprintln(asm.Listing)
	}

	prog = asm.PassII(src)

	if len(asm.translator.Faults) != 0 {
		err = &ErrAssembly{Errs: slices.Clone(asm.translator.Faults)}
	}

	return
}
