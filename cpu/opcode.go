package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MEMSZ        = 10000  // Words of memory.
	ACC_MAX      = 999999 // Largest accumulator magnitude.
	OPCODE_SCALE = 10000  // Word value of one opcode step.
	WORD_DIGITS  = 6      // Digits in an encoded word.
)

// Operation is a VC-3600 operation code.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_DATA  = Operation(0)  // data
	OP_ADD   = Operation(1)  // add
	OP_SUB   = Operation(2)  // sub
	OP_MULT  = Operation(3)  // mult
	OP_DIV   = Operation(4)  // div
	OP_LOAD  = Operation(5)  // load
	OP_STORE = Operation(6)  // store
	OP_READ  = Operation(7)  // read
	OP_WRITE = Operation(8)  // write
	OP_B     = Operation(9)  // b
	OP_BM    = Operation(10) // bm
	OP_BZ    = Operation(11) // bz
	OP_BP    = Operation(12) // bp
	OP_HALT  = Operation(13) // halt
)

// opMap maps assembler mnemonics to operations.
var opMap = map[string]Operation{
	"add":   OP_ADD,
	"sub":   OP_SUB,
	"mult":  OP_MULT,
	"div":   OP_DIV,
	"load":  OP_LOAD,
	"store": OP_STORE,
	"read":  OP_READ,
	"write": OP_WRITE,
	"b":     OP_B,
	"bm":    OP_BM,
	"bz":    OP_BZ,
	"bp":    OP_BP,
	"halt":  OP_HALT,
}

// OperationOf returns the operation for a mnemonic, ignoring case.
func OperationOf(mnemonic string) (op Operation, ok bool) {
	op, ok = opMap[strings.ToLower(mnemonic)]
	return
}

// Valid returns true for the executable operations.
func (op Operation) Valid() bool {
	return op >= OP_ADD && op <= OP_HALT
}

// Word is a single memory cell.
type Word int

// Encode builds the word for an operation and an operand address.
func Encode(op Operation, operand int) Word {
	return Word(int(op)*OPCODE_SCALE + operand)
}

// Decode splits a word into its operation and operand address.
// Opcode 0 decodes as OP_DATA, including negative constants.
func Decode(word Word) (op Operation, operand int, err error) {
	op = Operation(int(word) / OPCODE_SCALE)
	operand = int(word) % OPCODE_SCALE

	if op != OP_DATA && !op.Valid() {
		err = ErrOpcodeInvalid(word)
		return
	}

	return
}

// String returns the zero padded six digit text of the word.
func (word Word) String() string {
	return fmt.Sprintf("%0*d", WORD_DIGITS, int(word))
}

// ParseWord parses the text of an encoded word.
func ParseWord(text string) (word Word, err error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		err = ErrWordSyntax(text)
		return
	}

	if value > ACC_MAX || value < -ACC_MAX {
		err = ErrWordSyntax(text)
		return
	}

	word = Word(value)
	return
}
