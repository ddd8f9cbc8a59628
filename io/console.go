package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	CONSOLE_PROMPT = "? " // Prompt shown before a read.
	INPUT_DIGITS   = 6    // Significant digits of a console value.
)

// Console reads whitespace delimited values from Input and writes one value
// per line to Output.
type Console struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ Device = (*Console)(nil)

// output returns the output writer, discarding when none is attached.
func (con *Console) output() io.Writer {
	if con.Output == nil {
		return io.Discard
	}
	return con.Output
}

// Rewind drops any buffered input. The underlying reader is not rewound.
func (con *Console) Rewind() {
	con.scanner = nil
}

// Receive prompts for and reads the next token from Input.
func (con *Console) Receive() (value int, ok bool, err error) {
	if con.Input == nil {
		err = ErrInputEnd
		return
	}

	if con.scanner == nil {
		con.scanner = bufio.NewScanner(con.Input)
		con.scanner.Split(bufio.ScanWords)
	}

	fmt.Fprint(con.output(), CONSOLE_PROMPT)

	if !con.scanner.Scan() {
		err = con.scanner.Err()
		if err == nil {
			err = ErrInputEnd
		}
		return
	}

	value, err = ParseInput(con.scanner.Text())
	if err != nil {
		con.Alert(err.Error())
		err = nil
		return
	}

	ok = true
	return
}

// Send writes a value on its own line.
func (con *Console) Send(value int) (err error) {
	_, err = fmt.Fprintln(con.output(), value)
	return
}

// Alert writes a notice on its own line.
func (con *Console) Alert(text string) {
	fmt.Fprintln(con.output(), text)
}

// ParseInput converts a console token into a value.
// A leading sign is allowed, digits past the sixth are ignored, and every
// remaining character must be a digit.
func ParseInput(token string) (value int, err error) {
	negative := false
	switch {
	case strings.HasPrefix(token, "-"):
		negative = true
		token = token[1:]
	case strings.HasPrefix(token, "+"):
		token = token[1:]
	}

	if len(token) > INPUT_DIGITS {
		token = token[:INPUT_DIGITS]
	}

	if len(token) == 0 {
		err = ErrInputDigits
		return
	}

	for _, c := range token {
		if c < '0' || c > '9' {
			err = ErrInputDigits
			return
		}
	}

	value, err = strconv.Atoi(token)
	if err != nil {
		err = ErrInputDigits
		return
	}

	if negative {
		value = -value
	}

	return
}
