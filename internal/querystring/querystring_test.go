package querystring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DuplicatePolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   DuplicatePolicy
		input    string
		expected map[string][]string
		keys     []string
	}{
		{
			name:     "last keeps the final value at the first position",
			policy:   DuplicatesLast,
			input:    "a=1&b=2&a=3",
			expected: map[string][]string{"a": {"3"}, "b": {"2"}},
			keys:     []string{"a", "b"},
		},
		{
			name:     "all keeps every value",
			policy:   DuplicatesAll,
			input:    "a=1&b=2&a=3",
			expected: map[string][]string{"a": {"1", "3"}, "b": {"2"}},
			keys:     []string{"a", "b"},
		},
		{
			name:     "plus and percent decoding",
			policy:   DuplicatesLast,
			input:    "q=hello+world&x=%41%2b",
			expected: map[string][]string{"q": {"hello world"}, "x": {"A+"}},
			keys:     []string{"q", "x"},
		},
		{
			name:     "empty segments are skipped",
			policy:   DuplicatesLast,
			input:    "&&a=1&&b",
			expected: map[string][]string{"a": {"1"}, "b": {""}},
			keys:     []string{"a", "b"},
		},
		{
			name:     "bare equals is an empty pair",
			policy:   DuplicatesLast,
			input:    "a=1&=&b",
			expected: map[string][]string{"a": {"1"}, "": {""}, "b": {""}},
			keys:     []string{"a", "", "b"},
		},
		{
			name:     "malformed escapes stay literal",
			policy:   DuplicatesLast,
			input:    "k=%zz%4",
			expected: map[string][]string{"k": {"%zz%4"}},
			keys:     []string{"k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Parse(tt.input, ParseOptions{Duplicates: tt.policy})
			assert.Equal(t, tt.keys, v.Keys())
			for k, want := range tt.expected {
				assert.Equal(t, want, v.GetAll(k), "key %q", k)
			}
		})
	}
}

func TestParse_MaxKeys(t *testing.T) {
	v := Parse("a=1&b=2&c=3", ParseOptions{Duplicates: DuplicatesLast, MaxKeys: 2})
	assert.Equal(t, []string{"a", "b"}, v.Keys())

	v = Parse("a=1&b=2&c=3", ParseOptions{Duplicates: DuplicatesLast})
	assert.Equal(t, 3, v.Len())
}

func TestValues_Operations(t *testing.T) {
	v := NewValues()
	v.Append("a", "1")
	v.Append("b", "2")
	v.Append("a", "3")

	got, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", got)
	assert.Equal(t, []string{"1", "3"}, v.GetAll("a"))

	v.Set("a", "x")
	assert.Equal(t, []string{"x"}, v.GetAll("a"))
	assert.Equal(t, []string{"a", "b"}, v.Keys())

	v.Delete("a")
	assert.False(t, v.Has("a"))
	assert.Equal(t, []string{"b"}, v.Keys())

	_, ok = v.Get("missing")
	assert.False(t, ok)
}

func TestValues_ZeroValueIsUsable(t *testing.T) {
	var v Values
	v.Set("k", "v")
	assert.True(t, v.Has("k"))
	assert.Equal(t, "k=v", v.Encode())
}

func TestValues_CloneIsIndependent(t *testing.T) {
	orig := ParseString("a=1&b=2")
	clone := orig.Clone()
	clone.Set("a", "changed")
	clone.Append("c", "3")

	got, _ := orig.Get("a")
	assert.Equal(t, "1", got)
	assert.False(t, orig.Has("c"))
	assert.Nil(t, (*Values)(nil).Clone())
}

func TestValues_Encode(t *testing.T) {
	v := NewValues()
	v.Append("name", "John Doe")
	v.Append("tag", "a&b")
	v.Append("tag", "c=d")
	v.Append("safe", "-._~!'()*")

	assert.Equal(t, "name=John%20Doe&tag=a%26b&tag=c%3Dd&safe=-._~!'()*", v.Encode())
	assert.Equal(t, "", NewValues().Encode())
}

func TestParseDuplicatePolicy(t *testing.T) {
	p, err := ParseDuplicatePolicy("ALL")
	require.NoError(t, err)
	assert.Equal(t, DuplicatesAll, p)

	p, err = ParseDuplicatePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DuplicatesLast, p)

	_, err = ParseDuplicatePolicy("first")
	assert.Error(t, err)
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "a b", Unescape("a%20b"))
	assert.Equal(t, "100%", Unescape("100%"))
	assert.Equal(t, "a+b", Unescape("a+b"))
	assert.Equal(t, "a b", UnescapeQueryComponent("a+b"))
	assert.Equal(t, "%2", Unescape("%2"))
}
