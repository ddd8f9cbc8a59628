// Package io provides the devices of the VC-3600 toolchain: the source deck
// read by the assembler, the console used by the emulator, and the error log
// both of them report into.
package io

// Device defines the console interface used by the emulator.
// Devices exchange whole decimal values rather than characters.
type Device interface {
	// Rewind resets the device to its initial state.
	Rewind()
	// Receive reads one value. A false ok means the input was rejected.
	Receive() (value int, ok bool, err error)
	// Send writes one value.
	Send(value int) error
	// Alert shows a notice to the operator.
	Alert(text string)
}

// Source defines a line oriented program source that can be re-read.
type Source interface {
	// Rewind returns to the first line.
	Rewind()
	// NextLine returns the next line, or false at the end of the source.
	NextLine() (line string, ok bool)
}
