package cpu

import (
	"errors"
	"fmt"

	"github.com/abishjha/vc3600/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted        = errors.New(f("cpu halted"))
	ErrIpRange       = errors.New(f("instruction pointer out of memory"))
	ErrOperandRange  = errors.New(f("operand out of memory"))
	ErrOverflow      = errors.New(f("Overflow in the accumulator when executing command"))
	ErrDivideByZero  = errors.New(f("division by zero"))
	ErrDeviceMissing = errors.New(f("no console attached"))
)

// ErrOpcodeInvalid is a word whose opcode is not an operation.
type ErrOpcodeInvalid Word

func (eo ErrOpcodeInvalid) Error() string {
	return f("invalid opcode in word %v", Word(eo).String())
}

func (eo ErrOpcodeInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeInvalid)
	return
}

// ErrWordSyntax is text that does not encode a word.
type ErrWordSyntax string

func (err ErrWordSyntax) Error() string {
	return f("'%v' is not a machine word", string(err))
}

// ErrExecute decorates an execution failure with the instruction.
type ErrExecute struct {
	Op      Operation
	Operand int
	Err     error
}

func (err *ErrExecute) Error() string {
	return f("%v %v: %v", err.Op.String(), fmt.Sprintf("%04d", err.Operand), err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
