package errorwrapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			require.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.ErrorIs(t, wrappedError, tt.originalError)
		})
	}

	assert.NoError(t, WrapError(nil, "nothing to wrap"))
}

func TestInvalidURLError(t *testing.T) {
	err := NewInvalidURLError("http://a\uff0fb.com/", "a/b.com")

	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.NotErrorIs(t, err, ErrInvalidArgType)
	assert.Equal(t, "invalid URL 'http://a\uff0fb.com/': hostname 'a/b.com' is not allowed after encoding", err.Error())

	wrapped := WrapError(err, "resolve")
	var target *InvalidURLError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "a/b.com", target.Hostname)
}

func TestArgTypeError(t *testing.T) {
	err := NewArgTypeError("format", 42)

	assert.ErrorIs(t, err, ErrInvalidArgType)
	assert.Equal(t, "format: unsupported argument of type int", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("max_query_keys", -1, "max query keys cannot be negative")

	assert.Equal(t, "validation error: field 'max_query_keys' with value '-1': max query keys cannot be negative", err.Error())
}

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigurationError
		expected string
	}{
		{
			name:     "section and field",
			err:      NewConfigurationError("ParserConfig", "QueryDuplicates", "unknown policy"),
			expected: "configuration error in section 'ParserConfig', field 'QueryDuplicates': unknown policy",
		},
		{
			name:     "section only",
			err:      NewConfigurationError("LogConfig", "", "bad level"),
			expected: "configuration error in section 'LogConfig': bad level",
		},
		{
			name:     "no section",
			err:      NewConfigurationError("", "", "configuration is nil"),
			expected: "configuration error: configuration is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrInvalidConfiguration)
		})
	}
}

func TestNewError(t *testing.T) {
	base := errors.New("boom")
	err := NewError("failed to load '%s': %w", "legacyurl.yaml", base)

	assert.Equal(t, "failed to load 'legacyurl.yaml': boom", err.Error())
	assert.ErrorIs(t, err, base)
}
