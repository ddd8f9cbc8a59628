package asm

import (
	"fmt"
	"io"
	"iter"

	"github.com/abishjha/vc3600/internal"
)

// MULTIPLY_DEFINED is the location reported for a label defined twice.
const MULTIPLY_DEFINED = -999

// Symbol is a label and the location it was first defined at.
type Symbol struct {
	Name     string
	Location int
	Multiple bool // Set when the label was defined more than once.
}

// SymbolTable maps labels to locations for one assembly run.
type SymbolTable struct {
	symbol map[string]*Symbol
}

// Reset empties the table.
func (st *SymbolTable) Reset() {
	clear(st.symbol)
}

// Add records a label. A second definition marks the label as multiply
// defined instead of replacing the first location.
func (st *SymbolTable) Add(name string, location int) {
	if st.symbol == nil {
		st.symbol = make(map[string]*Symbol, 16)
	}

	sym, ok := st.symbol[name]
	if ok {
		sym.Multiple = true
		return
	}

	st.symbol[name] = &Symbol{Name: name, Location: location}
}

// Lookup returns the location of a label, or MULTIPLY_DEFINED.
func (st *SymbolTable) Lookup(name string) (location int, ok bool) {
	sym, ok := st.symbol[name]
	if !ok {
		return
	}

	location = sym.Location
	if sym.Multiple {
		location = MULTIPLY_DEFINED
	}
	return
}

// Symbol returns the entry for a label.
func (st *SymbolTable) Symbol(name string) (sym Symbol, ok bool) {
	entry, ok := st.symbol[name]
	if ok {
		sym = *entry
	}
	return
}

// Len returns the number of labels.
func (st *SymbolTable) Len() int {
	return len(st.symbol)
}

// All iterates labels in name order, yielding what Lookup would return.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return func(yield func(name string, location int) bool) {
		for name := range internal.SortedSeq2(st.symbol) {
			location, _ := st.Lookup(name)
			if !yield(name, location) {
				return
			}
		}
	}
}

// Defined iterates the labels defined exactly once, in name order.
func (st *SymbolTable) Defined() iter.Seq2[string, int] {
	return func(yield func(name string, location int) bool) {
		for name, sym := range internal.SortedSeq2(st.symbol) {
			if sym.Multiple {
				continue
			}
			if !yield(name, sym.Location) {
				return
			}
		}
	}
}

// Fprint writes the symbol table listing.
func (st *SymbolTable) Fprint(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w, "%-12s%-12s%-12s\n", "Symbol #", "Symbol", "Location")
	if err != nil {
		return
	}

	count := 0
	for name, location := range st.All() {
		_, err = fmt.Fprintf(w, "%-12d%-12s%-12d\n", count, name, location)
		if err != nil {
			return
		}
		count++
	}

	return
}
