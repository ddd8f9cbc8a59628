package io

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Deck is an in-memory Source.
type Deck struct {
	Lines     []string
	ReadIndex int
}

var _ Source = (*Deck)(nil)

// NewDeck splits text into a deck of lines.
func NewDeck(text string) *Deck {
	text = strings.TrimSuffix(text, "\n")
	if len(text) == 0 {
		return &Deck{}
	}

	lines := strings.Split(text, "\n")
	for n, line := range lines {
		lines[n] = strings.TrimSuffix(line, "\r")
	}

	return &Deck{Lines: lines}
}

// Rewind returns to the first line.
func (deck *Deck) Rewind() {
	deck.ReadIndex = 0
}

// NextLine returns the next line of the deck.
func (deck *Deck) NextLine() (line string, ok bool) {
	if deck.ReadIndex >= len(deck.Lines) {
		return
	}

	line = deck.Lines[deck.ReadIndex]
	deck.ReadIndex++
	ok = true
	return
}

// Reader is a Source over a seekable stream, such as an open file.
type Reader struct {
	Input io.ReadSeeker
	Err   error // First read or seek error.

	scanner *bufio.Scanner
}

var _ Source = (*Reader)(nil)

// NewReader creates a Source reading lines from input.
func NewReader(input io.ReadSeeker) *Reader {
	return &Reader{
		Input:   input,
		scanner: bufio.NewScanner(input),
	}
}

// Rewind seeks back to the start of the stream.
func (rd *Reader) Rewind() {
	_, err := rd.Input.Seek(0, io.SeekStart)
	if err != nil && rd.Err == nil {
		rd.Err = err
	}
	rd.scanner = bufio.NewScanner(rd.Input)
}

// NextLine returns the next line of the stream.
func (rd *Reader) NextLine() (line string, ok bool) {
	if rd.scanner == nil {
		rd.scanner = bufio.NewScanner(rd.Input)
	}

	if !rd.scanner.Scan() {
		if err := rd.scanner.Err(); err != nil && rd.Err == nil {
			rd.Err = err
		}
		return
	}

	line = strings.TrimSuffix(rd.scanner.Text(), "\r")
	ok = true
	return
}

// File is a Reader over an opened source file.
type File struct {
	*Reader
	file *os.File
}

// OpenFile opens a source file.
func OpenFile(path string) (file *File, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}

	file = &File{
		Reader: NewReader(inf),
		file:   inf,
	}

	return
}

// Close closes the source file.
func (file *File) Close() error {
	return file.file.Close()
}
