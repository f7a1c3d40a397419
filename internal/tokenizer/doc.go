// Package tokenizer turns one line of raw text into a synthetic argument
// vector, as if the words on the line had been passed on a command line.
//
// Splitting is shell-like but deliberately small: space, tab, CR and LF
// separate words outside quotes; ' and " toggle one shared quoted flag (a
// region opened with one quote character may be closed with the other); and
// $NAME is expanded from an injected lookup function, the name running until
// the next whitespace or quote character. Nothing in this package fails:
// malformed input only moves token boundaries, and is reported through an
// optional warning callback.
package tokenizer
