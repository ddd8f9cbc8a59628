package asm

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	defines := maps.All(map[string]int{"MEMSZ": 10000, "X": 7})

	table := [](struct {
		word  string
		value int
		ok    bool
	}){
		{"10", 10, true},
		{"-42", -42, true},
		{"+3", 3, true},
		{"abc", 0, false},
		{"$(X + 1)", 8, true},
		{"$(MEMSZ - 1)", 9999, true},
		{"$(2 * (X - 2))", 10, true},
		{"$(X // 2)", 3, true},
		{"$(X / 2)", 0, false},
		{"$(UNKNOWN)", 0, false},
		{"$(1 +)", 0, false},
		{"$('text')", 0, false},
	}

	for _, entry := range table {
		value, err := evaluate(entry.word, defines)
		if entry.ok {
			assert.NoError(err, entry.word)
			assert.Equal(entry.value, value, entry.word)
		} else {
			assert.Error(err, entry.word)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := evaluate("12x", maps.All(map[string]int{}))
	assert.Equal(ErrParseNumber("12x"), err)

	_, err = evaluate("$(None)", maps.All(map[string]int{}))
	assert.Equal(ErrParseExpression("None"), err)
}
