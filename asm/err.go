package asm

import (
	"errors"
	"strconv"

	"github.com/abishjha/vc3600/translate"
)

var f = translate.From

var (
	// Syntax errors
	ErrFieldsExcess  = errors.New(f("More than three fields"))
	ErrOperationBad  = errors.New(f("Bad Operation Command"))
	ErrOperandNeeded = errors.New(f("Missing operand"))

	// Semantic errors
	ErrLabelUndefined  = errors.New(f("Undefined Operand/Label"))
	ErrLabelMultiple   = errors.New(f("Multiply defined label"))
	ErrOperandRange    = errors.New(f("Operand out of range"))
	ErrConstantInvalid = errors.New(f("Invalid constant"))
	ErrConstantRange   = errors.New(f("Constant out of range"))
	ErrValueInvalid    = errors.New(f("Invalid numeric value"))

	// Structural errors
	ErrEndMissing    = errors.New(f("Missing end statement"))
	ErrLinesAfterEnd = errors.New(f("Lines after end statement"))
)

// ErrLocation ties an assembly error to a location counter value.
type ErrLocation struct {
	Location int
	Err      error
}

func (err *ErrLocation) Error() string {
	// Locations are addresses, not quantities; keep them ungrouped.
	return f("(location %v) %v", strconv.Itoa(err.Location), err.Err)
}

func (err *ErrLocation) Unwrap() error {
	return err.Err
}

// ErrAssembly collects every error of a failed assembly.
type ErrAssembly struct {
	Errs []error
}

func (err *ErrAssembly) Error() string {
	return f("%d assembly errors", len(err.Errs))
}

func (err *ErrAssembly) Unwrap() []error {
	return err.Errs
}

// ErrParseNumber is a field that is not a decimal number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is a $(...) field that did not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
