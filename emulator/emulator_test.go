package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abishjha/vc3600/asm"
	"github.com/abishjha/vc3600/cpu"
	"github.com/abishjha/vc3600/io"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(&emu.Console, emu.Cpu.Device)
}

func doAssemble(program []string, t *testing.T) (prog *asm.Program) {
	assert := assert.New(t)

	as := &asm.Assembler{}
	prog, err := as.Assemble(&io.Deck{Lines: program})
	assert.NoError(err)

	return
}

func doRun(program []string, input string, t *testing.T) (emu *Emulator, output string, err error) {
	assert := assert.New(t)

	prog := doAssemble(program, t)

	emu = NewEmulator()
	errs := &io.Log{}
	assert.True(emu.LoadProgram(prog, errs))
	assert.True(errs.IsEmpty())

	out := &bytes.Buffer{}
	emu.Console.Input = strings.NewReader(input)
	emu.Console.Output = out

	err = emu.Run()
	output = out.String()
	return
}

func TestHaltOnly(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Reset()
	assert.NoError(emu.Load(0, cpu.Encode(cpu.OP_HALT, 0)))

	assert.NoError(emu.Run())
	assert.True(emu.Cpu.Halted)
	assert.Equal(1, emu.Cpu.Ticks)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Reset()

	assert.ErrorIs(emu.Load(-1, 0), ErrLocationRange)
	assert.ErrorIs(emu.Load(cpu.MEMSZ, 0), ErrLocationRange)

	assert.NoError(emu.Load(20, 10))
	assert.NoError(emu.Load(5, 11))
	assert.Equal(20, emu.Origin())
	assert.Equal(cpu.Word(10), emu.Cpu.Memory[20])
	assert.Equal(cpu.Word(11), emu.Cpu.Memory[5])

	emu.Reset()
	assert.NoError(emu.Load(5, 11))
	assert.Equal(5, emu.Origin())
}

func TestLoadProgram(t *testing.T) {
	assert := assert.New(t)

	prog := &asm.Program{Words: []asm.CodeWord{
		{Location: 3, Encoded: "130000"},
		{Location: cpu.MEMSZ, Encoded: "000001"},
		{Location: 4, Encoded: "05????"},
	}}

	emu := NewEmulator()
	errs := &io.Log{}
	assert.False(emu.LoadProgram(prog, errs))
	assert.Equal([]string{
		"Location out of bounds error",
		"Error inserting the command 10000 000001 into the emulator memory",
		"Error inserting the command 4 05???? into the emulator memory",
	}, errs.Messages())

	assert.Equal(3, emu.Origin())
	assert.Equal(cpu.Encode(cpu.OP_HALT, 0), emu.Cpu.Memory[3])
}

func TestRunNothing(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Reset()
	assert.ErrorIs(emu.Run(), ErrNoProgram)
}

func TestCountdown(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"      org 100",
		"      read n",
		"      load n",
		"      bz done",
		"loop  write n",
		"      sub one",
		"      store n",
		"      bp loop",
		"done  halt done",
		"n     ds 1",
		"one   dc 1",
		"      end",
	}

	emu, output, err := doRun(program, "x12 3\n", t)
	assert.NoError(err)
	assert.True(emu.Cpu.Halted)
	assert.Equal(100, emu.Origin())
	assert.Equal("? Input is not all digits\n? 3\n2\n1\n", output)
	assert.Equal(cpu.Word(0), emu.Cpu.Memory[108])
}

func TestOverflow(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"     load big",
		"     add one",
		"     halt",
		"big  dc 999999",
		"one  dc 1",
		"     end",
	}

	emu, output, err := doRun(program, "", t)
	assert.ErrorIs(err, cpu.ErrOverflow)
	assert.Equal("Overflow in the accumulator when executing command\n", output)
	assert.Equal(999999, emu.Cpu.Accumulator)
	assert.Equal(1, emu.Cpu.Ip)

	var er *ErrRuntime
	assert.True(errors.As(err, &er))
	assert.Equal(1, er.Location)
	assert.Equal(2, er.LineNo)
}

func TestMissingHalt(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"top  b top",
		"     end",
	}

	emu, _, err := doRun(program, "", t)
	assert.ErrorIs(err, ErrMissingHalt)
	assert.Equal(cpu.MEMSZ, emu.Cpu.Ticks)
	assert.False(emu.Cpu.Halted)
}

func TestInputEnd(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"     read n",
		"     halt",
		"n    ds 1",
		"     end",
	}

	_, output, err := doRun(program, "", t)
	assert.ErrorIs(err, io.ErrInputEnd)
	assert.Equal("? ", output)
}

func TestDataSkipped(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"k    dc -25",
		"     write k",
		"     halt",
		"     end",
	}

	emu, output, err := doRun(program, "", t)
	assert.NoError(err)
	assert.Equal("-25\n", output)
	assert.Equal(3, emu.Cpu.Ticks)
}
