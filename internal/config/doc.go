// Package config manages user-level settings stored at
// $XDG_CONFIG_HOME/readlink/config.yaml and READLINK_* environment
// variables. Settings are validated against an embedded JSON schema before
// use, so a typo in the file fails loudly instead of being ignored.
package config
