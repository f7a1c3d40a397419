// Package cli wires the readlink pipeline together: load settings, read one
// line from stdin, tokenize it into an argument vector, and hand that vector
// to a Cobra command that parses the options and prints the resolved path.
// Business logic lives in the tokenizer and platform packages; this package
// only handles flag parsing, output formatting, and exit status.
package cli
