package querystring

import (
	"fmt"
	"strings"
)

// DuplicatePolicy decides what happens when a key repeats in a query string.
type DuplicatePolicy string

const (
	// DuplicatesLast appends the first occurrence and Sets every later one, so
	// the key ends up with the last value at the position of the first.
	DuplicatesLast DuplicatePolicy = "last"
	// DuplicatesAll appends every occurrence.
	DuplicatesAll DuplicatePolicy = "all"
)

// DefaultMaxKeys bounds the number of pairs decoded from one query string.
const DefaultMaxKeys = 1000

// ParseOptions configures Parse.
type ParseOptions struct {
	Duplicates DuplicatePolicy
	// MaxKeys limits decoded pairs; 0 means unlimited.
	MaxKeys int
}

// DefaultParseOptions returns the options used by the legacy parser.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Duplicates: DuplicatesLast,
		MaxKeys:    DefaultMaxKeys,
	}
}

// ParseDuplicatePolicy converts a configuration string to a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(strings.ToLower(s)) {
	case "", DuplicatesLast:
		return DuplicatesLast, nil
	case DuplicatesAll:
		return DuplicatesAll, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// Parse decodes an '&'-separated list of '='-separated pairs. '+' decodes to a
// space and percent escapes are decoded leniently. Empty segments are
// skipped; a bare "=" is the pair ("", "").
func Parse(qs string, opts ParseOptions) *Values {
	v := NewValues()
	if qs == "" {
		return v
	}

	pairs := 0
	for _, segment := range strings.Split(qs, "&") {
		if opts.MaxKeys > 0 && pairs >= opts.MaxKeys {
			break
		}

		if segment == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(segment, "=")
		pairs++

		key := UnescapeQueryComponent(rawKey)
		value := UnescapeQueryComponent(rawValue)
		if opts.Duplicates == DuplicatesAll || !v.Has(key) {
			v.Append(key, value)
		} else {
			v.Set(key, value)
		}
	}
	return v
}

// ParseString decodes qs with DefaultParseOptions.
func ParseString(qs string) *Values {
	return Parse(qs, DefaultParseOptions())
}
