package emulator

import (
	"errors"
	"strconv"

	"github.com/abishjha/vc3600/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrLocationRange = errors.New(f("Location out of bounds error"))
	ErrMissingHalt   = errors.New(f("missing halt statement"))
	ErrNoProgram     = errors.New(f("no program loaded"))
	ErrRunFailed     = errors.New(f("Error running the emulator"))
)

// ErrInsert is a program word that could not be placed in memory.
type ErrInsert struct {
	Location int
	Encoded  string
	Err      error
}

func (err *ErrInsert) Error() string {
	return f("Error inserting the command %v %v into the emulator memory", strconv.Itoa(err.Location), err.Encoded)
}

func (err *ErrInsert) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Location int
	LineNo   int
	Err      error
}

func (err *ErrRuntime) Error() string {
	return f("location %v line %v: %v", strconv.Itoa(err.Location), strconv.Itoa(err.LineNo), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
