// Package cpu implements the VC-3600 accumulator machine.
//
// The machine has a single signed accumulator bounded to six decimal digits,
// an instruction pointer, and MEMSZ words of memory. Every word is a signed
// decimal integer whose digits are reused as an instruction: the two high
// digits select the operation and the four low digits address memory.
package cpu
