package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		valid    bool
	}{
		{"empty", map[string]interface{}{}, true},
		{"all known keys", map[string]interface{}{
			"max_line_length": 10,
			"flush_trailing":  true,
			"interactive":     false,
			"prompt":          "> ",
			"log_level":       "trace",
			"log_file":        "",
		}, true},
		{"wrong type", map[string]interface{}{"flush_trailing": "yes"}, false},
		{"negative length", map[string]interface{}{"max_line_length": -1}, false},
		{"fractional length", map[string]interface{}{"max_line_length": 1.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(tt.settings)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, "issues: %v", result.Issues)
			if !tt.valid {
				assert.NotEmpty(t, result.Issues)
			}
		})
	}
}

func TestValidationIssueString(t *testing.T) {
	assert.Equal(t, "/log_level: bad", ValidationIssue{Path: "/log_level", Message: "bad"}.String())
	assert.Equal(t, "bad", ValidationIssue{Message: "bad"}.String())
}
