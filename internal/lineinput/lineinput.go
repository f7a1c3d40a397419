package lineinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// DefaultMaxLineLength bounds a line, excluding its trailing newline.
const DefaultMaxLineLength = 99999

var (
	// ErrInputUnavailable means no line could be obtained: end of input
	// before any byte, a read error, or an interrupted prompt.
	ErrInputUnavailable = errors.New("no input line available")

	// ErrLineTooLong means the line exceeded the configured maximum.
	ErrLineTooLong = errors.New("input line too long")
)

// Read reads one line from r. The trailing newline, when present, is kept.
// A line ending at end of input without a newline is returned as is. Bytes
// after the first newline are not consumed from the caller's point of view.
func Read(r io.Reader, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxLineLength
	}

	br := bufio.NewReader(r)
	var b strings.Builder
	for {
		chunk, err := br.ReadSlice('\n')

		content := len(chunk)
		if err == nil {
			content-- // the newline itself
		}
		if b.Len()+content > limit {
			return "", fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, limit)
		}
		b.Write(chunk)

		switch {
		case err == nil:
			return b.String(), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if b.Len() == 0 {
				return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
			}
			return b.String(), nil
		default:
			return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
		}
	}
}

// Reader reads the argument line from In, prompting on Out when In is a
// terminal and Interactive is set.
type Reader struct {
	In          io.Reader
	Out         io.Writer
	MaxLength   int
	Interactive bool
	Prompt      string
}

// Replaced in tests, which have no terminal behind In.
var (
	isTerminal   = IsTerminal
	promptConfig = func(*readline.Config) {}
)

// ReadLine returns one line using the terminal prompt or a plain read.
func (r *Reader) ReadLine() (string, error) {
	if r.Interactive && isTerminal(r.In) {
		return r.readTerminal()
	}
	return Read(r.In, r.MaxLength)
}

// IsTerminal reports whether in is backed by a terminal file descriptor.
func IsTerminal(in io.Reader) bool {
	f, ok := in.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Reader) readTerminal() (string, error) {
	limit := r.MaxLength
	if limit <= 0 {
		limit = DefaultMaxLineLength
	}

	cfg := &readline.Config{
		Prompt:                 r.Prompt,
		Stdin:                  io.NopCloser(r.In),
		Stdout:                 r.Out,
		Stderr:                 r.Out,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	}
	promptConfig(cfg)
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return "", fmt.Errorf("%w: opening prompt: %w", ErrInputUnavailable, err)
	}
	defer rl.Close()

	// io.EOF (Ctrl-D) and readline.ErrInterrupt (Ctrl-C) land here too.
	line, err := rl.Readline()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	if len(line) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, limit)
	}
	return line + "\n", nil
}
