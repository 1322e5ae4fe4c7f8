package urlhandler

import (
	"github.com/dlclark/regexp2"
	"golang.org/x/net/idna"
)

const hostnameMaxLen = 255

// Patterns use regexp2 because the simple path shape needs a negative lookahead.
var (
	protocolPattern   = regexp2.MustCompile(`^[a-z0-9.+-]+:`, regexp2.IgnoreCase)
	portPattern       = regexp2.MustCompile(`:[0-9]*$`, regexp2.None)
	hostPattern       = regexp2.MustCompile(`^//[^@/]+@[^@/]+`, regexp2.None)
	simplePathPattern = regexp2.MustCompile(`^(//?(?!/)[^?\s]*)(\?[^\s]*)?$`, regexp2.None)
)

// hostnameProfile is the lenient ASCII-compatible encoding: UTS #46 mapping
// without STD3, hyphen or DNS length checks. Its errors are ignored by callers.
var hostnameProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.ValidateLabels(false),
	idna.VerifyDNSLength(false),
)

// Protocols that never have a hostname.
var hostlessProtocol = map[string]bool{
	"javascript":  true,
	"javascript:": true,
}

// Protocols whose paths are never auto-escaped.
var unsafeProtocol = map[string]bool{
	"javascript":  true,
	"javascript:": true,
}

// Protocols that always carry the // authority marker.
var slashedProtocol = map[string]bool{
	"http":    true,
	"http:":   true,
	"https":   true,
	"https:":  true,
	"ftp":     true,
	"ftp:":    true,
	"gopher":  true,
	"gopher:": true,
	"file":    true,
	"file:":   true,
	"ws":      true,
	"ws:":     true,
	"wss":     true,
	"wss:":    true,
}

func isHostless(protocol *string) bool {
	return protocol != nil && hostlessProtocol[*protocol]
}

func isUnsafe(protocol *string) bool {
	return protocol != nil && unsafeProtocol[*protocol]
}

func isSlashed(protocol *string) bool {
	return protocol != nil && slashedProtocol[*protocol]
}

// isWhitespace reports the runes trimmed from both ends of an input.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\f', '\u00a0', '\ufeff':
		return true
	}
	return false
}

// nonHostChar marks characters that can never appear in a hostname. The
// authority scan stops treating input as host at the first one of them.
var nonHostChar = [256]bool{
	'\t': true, '\n': true, '\r': true, ' ': true,
	'"': true, '%': true, '\'': true, ';': true,
	'<': true, '>': true, '\\': true, '^': true,
	'`': true, '{': true, '|': true, '}': true,
}

// forbiddenHostChars may not appear in a hostname after encoding. If one
// does, the encoder introduced it and the URL is rejected.
const forbiddenHostChars = "\x00\t\n\r #%/:<>?@[\\]^|"

func isHostnameChar(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '.' || c == '-' || c == '+' || c == '_' ||
		c > 127
}

// autoEscape maps the bytes that are always escaped outside unsafe protocols.
var autoEscape = [256]string{
	'\t': "%09",
	'\n': "%0A",
	'\r': "%0D",
	' ':  "%20",
	'"':  "%22",
	'\'': "%27",
	'<':  "%3C",
	'>':  "%3E",
	'\\': "%5C",
	'^':  "%5E",
	'`':  "%60",
	'{':  "%7B",
	'|':  "%7C",
	'}':  "%7D",
}

// authSafe lists the bytes left as-is when serializing userinfo.
var authSafe [256]bool

func init() {
	const safe = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!'()*:._~-"
	for i := 0; i < len(safe); i++ {
		authSafe[safe[i]] = true
	}
}
