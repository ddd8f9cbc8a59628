package io

import (
	"fmt"
	"io"
	"slices"
)

// Log is an append-only list of error messages.
type Log struct {
	messages []string
}

// Reset empties the log.
func (lg *Log) Reset() {
	lg.messages = lg.messages[:0]
}

// Record appends a message.
func (lg *Log) Record(text string) {
	lg.messages = append(lg.messages, text)
}

// IsEmpty returns true when nothing has been recorded.
func (lg *Log) IsEmpty() bool {
	return len(lg.messages) == 0
}

// Len returns the number of recorded messages.
func (lg *Log) Len() int {
	return len(lg.messages)
}

// Messages returns a copy of the recorded messages.
func (lg *Log) Messages() []string {
	return slices.Clone(lg.messages)
}

// Flush writes every message, prefixed by its index.
func (lg *Log) Flush(w io.Writer) (err error) {
	for n, text := range lg.messages {
		_, err = fmt.Fprintf(w, "!ERROR %2d! %v\n", n, text)
		if err != nil {
			return
		}
	}

	return
}
