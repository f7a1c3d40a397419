package tokenizer

import (
	"fmt"
	"strings"
)

// LookupFunc resolves an environment variable name. It has the shape of
// os.LookupEnv so the process environment can be passed directly.
type LookupFunc func(name string) (string, bool)

// Vector is a synthetic argument vector. Element 0 is the program name
// supplied by the caller; the rest are tokens in the order they were read.
type Vector []string

// Program returns element 0, or "" for an empty vector.
func (v Vector) Program() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Args returns the tokens after the program name.
func (v Vector) Args() []string {
	if len(v) < 2 {
		return nil
	}
	return v[1:]
}

// Options tunes a Tokenizer.
type Options struct {
	// FlushTrailing finalizes a word (or $NAME reference) that is still
	// pending when the line ends. When false, a final word not followed by
	// whitespace or a closing quote is dropped.
	FlushTrailing bool

	// OnWarning, if set, receives every tolerated irregularity in scan order.
	OnWarning func(Warning)
}

// DefaultOptions returns the options used by Tokenize.
func DefaultOptions() Options {
	return Options{FlushTrailing: true}
}

// Tokenizer splits lines into argument vectors. It holds no per-line state
// and may be reused.
type Tokenizer struct {
	lookup LookupFunc
	opts   Options
}

// New returns a Tokenizer resolving $NAME through lookup. A nil lookup
// treats every variable as undefined.
func New(lookup LookupFunc, opts Options) *Tokenizer {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	return &Tokenizer{lookup: lookup, opts: opts}
}

// Tokenize splits line with DefaultOptions and returns a vector headed by program.
func Tokenize(program, line string, lookup LookupFunc) Vector {
	return New(lookup, DefaultOptions()).Tokenize(program, line)
}

// Tokenize splits line and returns a vector headed by program. It never fails.
func (t *Tokenizer) Tokenize(program, line string) Vector {
	s := &scanner{t: t, out: Vector{program}}
	for i := 0; i < len(line); i++ {
		s.step(i, line[i])
	}
	s.finish(lineTerminator(line))
	return s.out
}

// scanner is the state of one Tokenize call.
type scanner struct {
	t   *Tokenizer
	out Vector

	token    strings.Builder
	variable strings.Builder // "$" followed by the name read so far

	inQuotes   bool
	inVariable bool

	// Which character opened the quoted region and where. Only used for
	// warnings: either quote character closes the region.
	quote      byte
	quoteStart int
	varStart   int
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (s *scanner) step(i int, c byte) {
	switch {
	case isSeparator(c):
		s.resolveVariable()
		if s.inQuotes {
			s.token.WriteByte(c)
			return
		}
		s.finalize()

	case c == '\'' || c == '"':
		s.resolveVariable()
		if !s.inQuotes {
			s.inQuotes = true
			s.quote = c
			s.quoteStart = i
			return
		}
		if c != s.quote {
			s.warn(MismatchedQuote, i, fmt.Sprintf("opened with %c at offset %d, closed with %c", s.quote, s.quoteStart, c))
		}
		s.inQuotes = false
		s.finalize()

	case c == '$':
		if !s.inVariable {
			s.inVariable = true
			s.varStart = i
		}
		s.variable.WriteByte(c)

	case s.inVariable:
		s.variable.WriteByte(c)

	default:
		s.token.WriteByte(c)
	}
}

// resolveVariable closes a pending $NAME reference into the token buffer.
func (s *scanner) resolveVariable() {
	if !s.inVariable {
		return
	}
	ref := s.variable.String()
	s.variable.Reset()
	s.inVariable = false

	if len(ref) == 1 {
		s.token.WriteByte('$')
		s.warn(LoneDollar, s.varStart, "")
		return
	}
	name := ref[1:]
	if value, ok := s.t.lookup(name); ok {
		s.token.WriteString(value)
		return
	}
	s.warn(UndefinedVariable, s.varStart, name)
}

// finalize appends the token buffer to the vector if it holds anything.
func (s *scanner) finalize() {
	if s.token.Len() == 0 {
		return
	}
	s.out = append(s.out, s.token.String())
	s.token.Reset()
}

// finish flushes what is pending at end of input. term is the line's
// terminator ("\n", "\r\n" or ""); inside an unterminated quote it was
// appended to the token as data and is dropped again here.
func (s *scanner) finish(term string) {
	if s.inQuotes {
		s.warn(UnterminatedQuote, s.quoteStart, fmt.Sprintf("opened with %c", s.quote))
	}
	if !s.t.opts.FlushTrailing {
		return
	}
	s.resolveVariable()
	if s.inQuotes && term != "" {
		tok := strings.TrimSuffix(s.token.String(), term)
		s.token.Reset()
		s.token.WriteString(tok)
	}
	s.finalize()
}

func lineTerminator(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	}
	return ""
}

func (s *scanner) warn(kind WarningKind, offset int, detail string) {
	if s.t.opts.OnWarning == nil {
		return
	}
	s.t.opts.OnWarning(Warning{Kind: kind, Offset: offset, Detail: detail})
}
