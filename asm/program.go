package asm

import (
	"iter"
)

// Program is the ordered output of Pass II.
type Program struct {
	Words []CodeWord
}

// Debug returns the word emitted at a location.
func (prog *Program) Debug(location int) (word *CodeWord, ok bool) {
	for n := range prog.Words {
		if prog.Words[n].Location == location {
			return &prog.Words[n], true
		}
	}

	return
}

// Codes iterates the words in emission order. Words that do not decode,
// such as placeholders, yield an error.
func (prog *Program) Codes() iter.Seq2[CodeWord, error] {
	return func(yield func(word CodeWord, err error) bool) {
		for _, word := range prog.Words {
			_, err := word.Word()
			if !yield(word, err) {
				return
			}
		}
	}
}
