// Package lineinput reads the single, length-bounded line of arguments the
// CLI takes from standard input. Piped input is read with a buffered reader;
// a terminal gets a line-editing prompt.
package lineinput
