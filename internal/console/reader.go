package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader supplies input one line at a time.  ReadLine returns the
// line without its trailing newline, and io.EOF once the input is
// exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

type bufferedReader struct {
	r *bufio.Reader
}

// NewLineReader reads lines from r.  Lines have no length limit, and a
// final line without a newline is still returned before io.EOF.
func NewLineReader(r io.Reader) LineReader {
	return &bufferedReader{r: bufio.NewReader(r)}
}

func (b *bufferedReader) ReadLine() (string, error) {
	line, err := b.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// ScriptReader replays a fixed list of lines and then reports io.EOF.
type ScriptReader struct {
	lines []string
}

// NewScriptReader returns a reader that yields lines in order.
func NewScriptReader(lines ...string) *ScriptReader {
	return &ScriptReader{lines: lines}
}

// ReadLine returns the next scripted line, or io.EOF when none are left.
func (s *ScriptReader) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}
