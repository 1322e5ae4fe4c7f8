// Package querystring implements the ordered key/value container used for
// decoded query strings.
package querystring

import "strings"

// Values is an ordered mapping from a key to one or more values. Keys keep the
// position of their first insertion.
type Values struct {
	keys  []string
	store map[string][]string
}

// NewValues creates an empty container.
func NewValues() *Values {
	return &Values{store: make(map[string][]string)}
}

func (v *Values) init() {
	if v.store == nil {
		v.store = make(map[string][]string)
	}
}

// Len returns the number of distinct keys.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Keys returns the keys in insertion order.
func (v *Values) Keys() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Has reports whether key is present.
func (v *Values) Has(key string) bool {
	if v == nil {
		return false
	}
	_, ok := v.store[key]
	return ok
}

// Get returns the first value stored for key.
func (v *Values) Get(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	vals, ok := v.store[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// GetAll returns every value stored for key.
func (v *Values) GetAll(key string) []string {
	if v == nil {
		return nil
	}
	vals := v.store[key]
	if vals == nil {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Set replaces all values of key with value. A new key goes to the end.
func (v *Values) Set(key, value string) {
	v.init()
	if _, ok := v.store[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.store[key] = []string{value}
}

// Append adds value to key, keeping earlier values.
func (v *Values) Append(key, value string) {
	v.init()
	if _, ok := v.store[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.store[key] = append(v.store[key], value)
}

// Delete removes key and all of its values.
func (v *Values) Delete(key string) {
	if _, ok := v.store[key]; !ok {
		return
	}
	delete(v.store, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i:i], v.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy; mutating the copy never affects v.
func (v *Values) Clone() *Values {
	if v == nil {
		return nil
	}
	c := &Values{
		keys:  make([]string, len(v.keys)),
		store: make(map[string][]string, len(v.store)),
	}
	copy(c.keys, v.keys)
	for k, vals := range v.store {
		cp := make([]string, len(vals))
		copy(cp, vals)
		c.store[k] = cp
	}
	return c
}

// Encode serializes the container as "k=v&k=v2&other=x", escaping keys and
// values. Keys with several values are repeated in order.
func (v *Values) Encode() string {
	if v.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for _, k := range v.keys {
		ek := Escape(k)
		for _, val := range v.store[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(ek)
			b.WriteByte('=')
			b.WriteString(Escape(val))
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (v *Values) String() string {
	return v.Encode()
}
