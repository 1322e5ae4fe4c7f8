package querystring

import "strings"

const upperhex = "0123456789ABCDEF"

// componentSafe marks the bytes a query component may carry unescaped:
// letters, digits and - . _ ~ ! ' ( ) *
var componentSafe [256]bool

func init() {
	const safe = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"-._~!'()*"
	for i := 0; i < len(safe); i++ {
		componentSafe[safe[i]] = true
	}
}

// Escape percent-encodes every byte of s outside the component-safe set.
func Escape(s string) string {
	return EscapeWith(s, &componentSafe)
}

// EscapeWith percent-encodes every byte of s whose entry in allowed is false.
func EscapeWith(s string, allowed *[256]bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !allowed[s[i]] {
			n++
		}
	}
	if n == 0 {
		return s
	}

	p := make([]byte, len(s)+2*n)
	j := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if allowed[b] {
			p[j] = b
			j++
			continue
		}
		p[j] = '%'
		p[j+1] = upperhex[b>>4]
		p[j+2] = upperhex[b&15]
		j += 3
	}
	return string(p)
}

func isHex(b byte) bool {
	return '0' <= b && b <= '9' ||
		'a' <= b && b <= 'f' ||
		'A' <= b && b <= 'F'
}

func hexValue(b byte) byte {
	if b <= '9' {
		return b & 0xf
	}
	return 9 + (b & 0xf)
}

// Unescape decodes %XX sequences in s. Malformed sequences are kept literally
// instead of failing.
func Unescape(s string) string {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(hexValue(s[i+1])<<4 | hexValue(s[i+2]))
			i += 3
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// UnescapeQueryComponent decodes a form-encoded component: '+' becomes a space
// before percent decoding.
func UnescapeQueryComponent(s string) string {
	return Unescape(strings.ReplaceAll(s, "+", " "))
}
