package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		token string
		value int
		ok    bool
	}){
		{"plain", "42", 42, true},
		{"positive", "+17", 17, true},
		{"negative", "-250", -250, true},
		{"six digits", "999999", 999999, true},
		{"truncated", "1234567", 123456, true},
		{"truncated negative", "-98765432", -987654, true},
		{"letters first", "abc12", 0, false},
		{"letters last", "12abc", 0, false},
		{"sign only", "-", 0, false},
		{"empty", "", 0, false},
		{"garbage past sixth digit", "123456xyz", 123456, true},
	}

	for _, entry := range table {
		value, err := ParseInput(entry.token)
		if entry.ok {
			assert.NoError(err, entry.name)
			assert.Equal(entry.value, value, entry.name)
		} else {
			assert.ErrorIs(err, ErrInputDigits, entry.name)
		}
	}
}

func TestConsoleReceive(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := &Console{
		Input:  strings.NewReader("12 abc12\n-7"),
		Output: out,
	}

	value, ok, err := con.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(12, value)

	_, ok, err = con.Receive()
	assert.NoError(err)
	assert.False(ok)

	value, ok, err = con.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(-7, value)

	_, ok, err = con.Receive()
	assert.ErrorIs(err, ErrInputEnd)
	assert.False(ok)

	assert.Equal("? ? "+ErrInputDigits.Error()+"\n? ? ", out.String())
}

func TestConsoleNoInput(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}
	_, _, err := con.Receive()
	assert.ErrorIs(err, ErrInputEnd)

	// Output defaults to discard.
	assert.NoError(con.Send(5))
}

func TestConsoleSend(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := &Console{Output: out}

	assert.NoError(con.Send(10))
	assert.NoError(con.Send(-3))
	con.Alert("notice")

	assert.Equal("10\n-3\nnotice\n", out.String())
}
