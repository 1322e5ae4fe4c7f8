// Package urlhandler implements the legacy, lenient URL dialect: parsing a
// string into a record of optional components, formatting a record back to a
// string, and resolving a reference against a base.
//
// The package-level functions use a parser with a no-op logger and the
// default query policy. Use NewParser for configured logging and query
// decoding.
package urlhandler

import (
	"fmt"

	"github.com/aleister1102/legacyurl/internal/common/errorwrapper"
)

// Parse parses input with the default parser.
func Parse(input string, decodeQuery, forceHostDetection bool) (*URL, error) {
	return defaultParser.Parse(input, ParseOptions{
		DecodeQuery:        decodeQuery,
		ForceHostDetection: forceHostDetection,
	})
}

// FormatString parses s without query decoding or host detection and formats
// the result.
func FormatString(s string) (string, error) {
	u, err := Parse(s, false, false)
	if err != nil {
		return "", err
	}
	return Format(u), nil
}

// FormatAny formats a string, a URL or a *URL. Other fmt.Stringer values are
// returned through their own String method; anything else is an
// errorwrapper.ErrInvalidArgType.
func FormatAny(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return FormatString(x)
	case *URL:
		return Format(x), nil
	case URL:
		return Format(&x), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", errorwrapper.NewArgTypeError("format", v)
	}
}

// Resolve resolves reference against base, both given as strings.
func Resolve(base, reference string) (string, error) {
	return defaultParser.Resolve(base, reference)
}

// ResolveObject resolves reference against base with the default parser.
func ResolveObject(base, reference *URL) *URL {
	return defaultParser.ResolveObject(base, reference)
}

// ResolveObjectAny accepts strings or records for either argument. Strings
// are parsed with host detection forced. An empty or nil base returns the
// reference, parsed if it was a string.
func ResolveObjectAny(base, reference any) (*URL, error) {
	ref, err := toRecord(reference, false)
	if err != nil {
		return nil, err
	}
	b, err := toRecord(base, true)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return ref, nil
	}
	return defaultParser.ResolveObject(b, ref), nil
}

// toRecord converts a resolve argument to a record. Nil maps to nil, and so
// does "" when emptyIsNil is set.
func toRecord(v any, emptyIsNil bool) (*URL, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		if x == "" && emptyIsNil {
			return nil, nil
		}
		return Parse(x, false, true)
	case *URL:
		return x, nil
	case URL:
		return &x, nil
	default:
		return nil, errorwrapper.NewArgTypeError("resolve", v)
	}
}
