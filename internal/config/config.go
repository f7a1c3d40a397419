package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/agentx-labs/readlink/internal/branding"
	"github.com/agentx-labs/readlink/internal/lineinput"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys, as written in config.yaml. The environment form is the
// upper-cased key behind the READLINK_ prefix.
const (
	KeyMaxLineLength = "max_line_length"
	KeyFlushTrailing = "flush_trailing"
	KeyInteractive   = "interactive"
	KeyPrompt        = "prompt"
	KeyLogLevel      = "log_level"
	KeyLogFile       = "log_file"
)

var knownKeys = []string{
	KeyMaxLineLength,
	KeyFlushTrailing,
	KeyInteractive,
	KeyPrompt,
	KeyLogLevel,
	KeyLogFile,
}

// Settings is the validated, typed view of the configuration.
type Settings struct {
	MaxLineLength int
	FlushTrailing bool
	Interactive   bool
	Prompt        string
	LogLevel      string
	LogFile       string
}

// Dir returns the config directory. READLINK_CONFIG_DIR overrides the XDG default.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("config_dir")); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, branding.ConfigDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxLineLength, lineinput.DefaultMaxLineLength)
	v.SetDefault(KeyFlushTrailing, true)
	v.SetDefault(KeyInteractive, true)
	v.SetDefault(KeyPrompt, branding.CLIName()+"> ")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
}

// Load reads the config file (if any) and the environment, validates the
// merged result, and returns it. A missing config file is not an error.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}

	doc := document(v)
	result, err := Validate(doc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Path: FilePath(), Issues: result.Issues}
	}

	return &Settings{
		MaxLineLength: v.GetInt(KeyMaxLineLength),
		FlushTrailing: v.GetBool(KeyFlushTrailing),
		Interactive:   v.GetBool(KeyInteractive),
		Prompt:        v.GetString(KeyPrompt),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFile:       v.GetString(KeyLogFile),
	}, nil
}

// document builds the instance the schema sees. Known keys are coerced the
// way viper's typed getters would coerce them, so environment strings such
// as "128" or "false" validate; a value that does not convert is passed
// through raw and fails the schema's type check instead of silently
// becoming a zero value. Unknown file keys are passed through untouched so
// the schema can reject them.
func document(v *viper.Viper) map[string]interface{} {
	doc := make(map[string]interface{}, len(knownKeys))
	for k, val := range v.AllSettings() {
		doc[k] = val
	}
	coerce(doc, v, KeyMaxLineLength, func(raw interface{}) (interface{}, error) { return cast.ToIntE(raw) })
	for _, key := range []string{KeyFlushTrailing, KeyInteractive} {
		coerce(doc, v, key, func(raw interface{}) (interface{}, error) { return cast.ToBoolE(raw) })
	}
	for _, key := range []string{KeyPrompt, KeyLogLevel, KeyLogFile} {
		coerce(doc, v, key, func(raw interface{}) (interface{}, error) { return cast.ToStringE(raw) })
	}
	return doc
}

func coerce(doc map[string]interface{}, v *viper.Viper, key string, conv func(interface{}) (interface{}, error)) {
	raw := v.Get(key)
	if val, err := conv(raw); err == nil {
		doc[key] = val
		return
	}
	doc[key] = raw
}
