package urlhandler

import (
	"testing"

	"github.com/aleister1102/legacyurl/internal/common/errorwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveObjectAny(t *testing.T) {
	record, err := Parse("http://example.com/a/b", false, true)
	require.NoError(t, err)

	tests := []struct {
		name      string
		base      any
		reference any
		expected  string
	}{
		{name: "strings", base: "http://example.com/a/b", reference: "../c", expected: "http://example.com/c"},
		{name: "record base", base: record, reference: "c", expected: "http://example.com/a/c"},
		{name: "record value base", base: *record, reference: "/x", expected: "http://example.com/x"},
		{name: "nil base returns parsed reference", base: nil, reference: "//h/p", expected: "//h/p"},
		{name: "empty base returns parsed reference", base: "", reference: "/x?y", expected: "/x?y"},
		{name: "empty reference keeps the base", base: "http://example.com/a/b#h", reference: "", expected: "http://example.com/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveObjectAny(tt.base, tt.reference)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.Href)
		})
	}
}

func TestResolveObjectAny_Errors(t *testing.T) {
	_, err := ResolveObjectAny("http://a.com", 3.5)
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidArgType)

	_, err = ResolveObjectAny([]string{"x"}, "/p")
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidArgType)

	_, err = ResolveObjectAny("http://a\uff0fb.com", "/p")
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidURL)
}
