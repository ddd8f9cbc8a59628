// Copyright 2025, Abish Jha

package cpu

import (
	"fmt"
	"log"

	"github.com/abishjha/vc3600/io"
)

// Device is the console the cpu reads from and writes to.
type Device io.Device

// Cpu is the simulation context for the VC-3600.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory      [MEMSZ]Word // Main memory.
	Accumulator int         // The accumulator register.
	Ip          int         // Current instruction pointer.
	Halted      bool        // Set once a halt has executed.

	Ticks int // Fetch/decode/execute cycles since reset.

	Device Device // Console for read and write.
}

// NewCpu creates a new cpu attached to a console device.
func NewCpu(device Device) (cpu *Cpu) {
	cpu = &Cpu{
		Device: device,
	}

	return
}

// String returns the current register state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"ip", "acc", "halted", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%04d", cpu.Ip)
		case "acc":
			strval = fmt.Sprintf("%+07d", cpu.Accumulator)
		case "halted":
			strval = "false"
			if cpu.Halted {
				strval = "true"
			}
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Reset the cpu state.
// - Clears memory and the accumulator.
// - Zeros the tick counter.
// - Rewinds the console.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory[:])
	cpu.Accumulator = 0
	cpu.Ip = 0
	cpu.Halted = false
	cpu.Ticks = 0

	if cpu.Device != nil {
		cpu.Device.Rewind()
	}
}

// Fetch returns the decoded instruction at the instruction pointer.
func (cpu *Cpu) Fetch() (op Operation, operand int, err error) {
	if cpu.Ip < 0 || cpu.Ip >= MEMSZ {
		err = ErrIpRange
		return
	}

	return Decode(cpu.Memory[cpu.Ip])
}

// Tick executes a single fetch/decode/execute cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	op, operand, err := cpu.Fetch()
	if err != nil {
		return
	}

	cpu.Ticks++

	return cpu.Execute(op, operand)
}

// arith applies an arithmetic result to the accumulator.
// Results that do not fit leave the accumulator unchanged.
func (cpu *Cpu) arith(result int) (err error) {
	if result > ACC_MAX || result < -ACC_MAX {
		if cpu.Device != nil {
			cpu.Device.Alert(ErrOverflow.Error())
		}
		err = ErrOverflow
		return
	}

	cpu.Accumulator = result
	return
}

// Execute executes a single decoded instruction.
// The instruction pointer only moves when the instruction completes.
func (cpu *Cpu) Execute(op Operation, operand int) (err error) {
	defer func() {
		if err != nil {
			err = &ErrExecute{Op: op, Operand: operand, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("%04d: %v %04d acc=%d", cpu.Ip, op, operand, cpu.Accumulator)
	}

	next_ip := cpu.Ip + 1

	if op == OP_DATA {
		// Constants are stepped over.
		cpu.Ip = next_ip
		return
	}

	if operand < 0 || operand >= MEMSZ {
		err = ErrOperandRange
		return
	}

	value := int(cpu.Memory[operand])

	switch op {
	case OP_ADD:
		err = cpu.arith(cpu.Accumulator + value)
	case OP_SUB:
		err = cpu.arith(cpu.Accumulator - value)
	case OP_MULT:
		err = cpu.arith(cpu.Accumulator * value)
	case OP_DIV:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		err = cpu.arith(cpu.Accumulator / value)
	case OP_LOAD:
		cpu.Accumulator = value
	case OP_STORE:
		cpu.Memory[operand] = Word(cpu.Accumulator)
	case OP_READ:
		if cpu.Device == nil {
			err = ErrDeviceMissing
			return
		}
		var input int
		var ok bool
		input, ok, err = cpu.Device.Receive()
		if err != nil {
			return
		}
		if !ok {
			// Rejected input; the read is retried.
			return
		}
		cpu.Memory[operand] = Word(input)
	case OP_WRITE:
		if cpu.Device == nil {
			err = ErrDeviceMissing
			return
		}
		err = cpu.Device.Send(value)
	case OP_B:
		next_ip = operand
	case OP_BM:
		if cpu.Accumulator < 0 {
			next_ip = operand
		}
	case OP_BZ:
		if cpu.Accumulator == 0 {
			next_ip = operand
		}
	case OP_BP:
		if cpu.Accumulator > 0 {
			next_ip = operand
		}
	case OP_HALT:
		cpu.Halted = true
		return
	default:
		err = ErrOpcodeInvalid(Encode(op, operand))
		return
	}

	if err != nil {
		return
	}

	cpu.Ip = next_ip

	return
}
