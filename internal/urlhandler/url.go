package urlhandler

import "github.com/aleister1102/legacyurl/internal/querystring"

// URL is a parsed URL record. A nil pointer field means the component is
// absent; fields are never written through their pointers, so copies of a
// record may share them.
type URL struct {
	Protocol *string // lowercase scheme including the trailing ':'
	Slashes  bool    // the "//" authority marker was consumed
	Auth     *string // percent-decoded "user:pass"
	Host     *string // Hostname plus ":port" when a port is present
	Port     *string
	Hostname *string // lowercase ASCII; IPv6 literals without brackets
	Hash     *string // including the leading '#'
	Search   *string // including the leading '?'
	Query    Query
	Pathname *string
	Path     *string // Pathname + Search
	Href     string
}

// Query holds either the raw query substring or its decoded form, never both.
type Query struct {
	Raw    *string
	Values *querystring.Values
}

// IsDecoded reports whether the query holds a decoded mapping.
func (q Query) IsDecoded() bool {
	return q.Values != nil
}

// String returns the raw query, or the encoded mapping when decoded.
func (q Query) String() string {
	if q.Values != nil {
		return q.Values.Encode()
	}
	return StringFromPtr(q.Raw)
}

func (q Query) clone() Query {
	return Query{Raw: q.Raw, Values: q.Values.Clone()}
}

// Clone returns a copy of u that shares no mutable state with it.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	c := *u
	c.Query = u.Query.clone()
	return &c
}

// String returns the canonical serialization of u.
func (u *URL) String() string {
	return Format(u)
}

// Resolve resolves reference against u and returns the serialized result.
func (u *URL) Resolve(reference string) (string, error) {
	return defaultParser.resolveFrom(u, reference)
}

// ResolveObject resolves reference against u.
func (u *URL) ResolveObject(reference *URL) *URL {
	return defaultParser.ResolveObject(u, reference)
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// StringFromPtr dereferences p, mapping nil to "".
func StringFromPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// isSet reports a present, non-empty component.
func isSet(p *string) bool {
	return p != nil && *p != ""
}

// samePtrValue compares two optional strings; absent differs from empty.
func samePtrValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
