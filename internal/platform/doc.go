// Package platform provides the two filesystem capabilities the CLI is built
// on: reading the raw target of a symbolic link, and canonicalizing a path by
// following every symlink in every component.
package platform
