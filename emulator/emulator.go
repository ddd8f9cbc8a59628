// Copyright 2025, Abish Jha

package emulator

import (
	"errors"
	"log"

	"github.com/abishjha/vc3600/asm"
	"github.com/abishjha/vc3600/cpu"
	"github.com/abishjha/vc3600/io"
)

// Emulator state. CPU + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Reference to the currently loaded program.

	Console io.Console // Console for read and write.

	origin int
	loaded bool
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &asm.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Console)

	return
}

// Reset clears memory, registers and the origin.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.origin = 0
	emu.loaded = false
}

// Origin returns the location execution starts at.
func (emu *Emulator) Origin() int {
	return emu.origin
}

// Load stores a word in memory. The first successful load after a reset
// sets the origin.
func (emu *Emulator) Load(location int, word cpu.Word) (err error) {
	if location < 0 || location >= cpu.MEMSZ {
		err = ErrLocationRange
		return
	}

	emu.Cpu.Memory[location] = word

	if !emu.loaded {
		emu.origin = location
		emu.loaded = true
	}

	return
}

// LoadProgram resets the emulator and loads every word of a program.
// Failures are recorded in the log; false is returned if any word was not
// loaded.
func (emu *Emulator) LoadProgram(prog *asm.Program, errs *io.Log) (ok bool) {
	emu.Reset()
	emu.Program = prog

	ok = true
	for word, err := range prog.Codes() {
		if err == nil {
			value, _ := word.Word()
			err = emu.Load(word.Location, value)
		}
		if err != nil {
			if errs != nil {
				if errors.Is(err, ErrLocationRange) {
					errs.Record(err.Error())
				}
				errs.Record((&ErrInsert{Location: word.Location, Encoded: word.Encoded, Err: err}).Error())
			}
			ok = false
		}
	}

	return
}

// LineNo returns the source line number of the executing word.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	word, ok := emu.Program.Debug(emu.Cpu.Ip)
	if !ok {
		return 0
	}

	return word.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	location := emu.Cpu.Ip
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Location: location, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted
	return
}

// Run executes from the origin until a halt, an error, or MEMSZ cycles
// have elapsed.
func (emu *Emulator) Run() (err error) {
	if !emu.loaded {
		err = ErrNoProgram
		return
	}

	emu.Cpu.Ip = emu.origin
	emu.Cpu.Halted = false

	for range cpu.MEMSZ {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: %v", err)
				log.Print(emu.Cpu.String())
			}
			return
		}
		if done {
			if emu.Verbose {
				log.Printf("emulator: halted after %d ticks", emu.Cpu.Ticks)
			}
			return
		}
	}

	err = &ErrRuntime{Location: emu.Cpu.Ip, LineNo: emu.LineNo(), Err: ErrMissingHalt}
	return
}
