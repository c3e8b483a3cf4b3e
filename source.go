package calc

import (
	"bufio"
	"io"
)

// LineSource supplies lines of input. NextLine blocks until a line is
// available. It returns io.EOF when the input is exhausted. Lines do not
// include their terminators.
type LineSource interface {
	NextLine() (string, error)
}

// LineSourceFunc adapts a function to a LineSource.
type LineSourceFunc func() (string, error)

// NextLine calls f.
func (f LineSourceFunc) NextLine() (string, error) {
	return f()
}

type lineSlice struct {
	lines []string
}

// Lines returns a LineSource that produces each of lines in order.
func Lines(lines ...string) LineSource {
	return &lineSlice{lines}
}

func (s *lineSlice) NextLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	r := s.lines[0]
	s.lines = s.lines[1:]
	return r, nil
}

type scanSource struct {
	s *bufio.Scanner
}

// ScanLines returns a LineSource that reads lines from r.
func ScanLines(r io.Reader) LineSource {
	return scanSource{bufio.NewScanner(r)}
}

func (s scanSource) NextLine() (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.s.Text(), nil
}
