package lineinput

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"line with newline", "-f /tmp/x\n", "-f /tmp/x\n"},
		{"stops at first newline", "first\nsecond\n", "first\n"},
		{"no trailing newline", "abc", "abc"},
		{"blank line", "\n", "\n"},
		{"crlf kept", "a b\r\n", "a b\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnavailable)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Read(failingReader{err: boom}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestReadLengthLimit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int
		wantErr bool
	}{
		{"exactly at limit", "abcde\n", 5, false},
		{"at limit without newline", "abcde", 5, false},
		{"one over", "abcdef\n", 5, true},
		{"one over without newline", "abcdef", 5, true},
		{"long line within default", strings.Repeat("x", 10000) + "\n", 0, false},
		{"long line spanning buffers", strings.Repeat("x", 10000) + "\n", 9999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input), tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrLineTooLong)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestReaderNonTerminal(t *testing.T) {
	var prompt bytes.Buffer
	r := &Reader{
		In:          strings.NewReader("-n link\n"),
		Out:         &prompt,
		MaxLength:   100,
		Interactive: true,
		Prompt:      "readlink> ",
	}

	got, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "-n link\n", got)
	assert.Empty(t, prompt.String(), "no prompt is written for piped input")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(strings.NewReader("x")))
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

// fakeTerminal routes ReadLine through the readline prompt with raw mode
// and screen queries stubbed out.
func fakeTerminal(t *testing.T) {
	t.Helper()
	prevTerm, prevCfg := isTerminal, promptConfig
	isTerminal = func(io.Reader) bool { return true }
	promptConfig = func(cfg *readline.Config) {
		cfg.FuncIsTerminal = func() bool { return true }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
		cfg.FuncGetWidth = func() int { return 80 }
		cfg.FuncOnWidthChanged = func(func()) {}
	}
	t.Cleanup(func() { isTerminal, promptConfig = prevTerm, prevCfg })
}

func TestReaderTerminal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int
		want    string
		wantErr error
	}{
		{"line", "-f /tmp/x\n", 0, "-f /tmp/x\n", nil},
		{"at limit", "abc\n", 3, "abc\n", nil},
		{"over limit", "abcdef\n", 3, "", ErrLineTooLong},
		{"end of input", "", 0, "", ErrInputUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeTerminal(t)
			var out bytes.Buffer
			r := &Reader{
				In:          strings.NewReader(tt.input),
				Out:         &out,
				MaxLength:   tt.max,
				Interactive: true,
				Prompt:      "readlink> ",
			}

			got, err := r.ReadLine()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "readlink> ")
		})
	}
}

func TestReaderTerminalNotInteractive(t *testing.T) {
	fakeTerminal(t)
	r := &Reader{In: strings.NewReader("a b\n"), Out: &bytes.Buffer{}, Interactive: false}

	got, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a b\n", got)
}
