package loader

import (
	"bufio"
	"io"
	"strings"
)

// LineReader - Reads lines of any length from a reader. The line break, and a carriage return before it, are removed.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader - Returns a pointer to a new LineReader reading from r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// Next - Returns the next line.
// A last line without a line break is returned like any other line, err is io.EOF only when there are no more lines.
func (L *LineReader) Next() (line string, err error) {
	line, err = L.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		line = ""
		return
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return
}
