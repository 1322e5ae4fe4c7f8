package urlhandler

import (
	"strings"

	"github.com/aleister1102/legacyurl/internal/common/errorwrapper"
	"github.com/aleister1102/legacyurl/internal/querystring"
	"github.com/dlclark/regexp2"
)

// matchString returns the text matched by re, or "" when it does not match.
func matchString(re *regexp2.Regexp, s string) string {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}
	return m.String()
}

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// parseScheme consumes a leading "name:" and stores it lowercased. The scheme
// is also returned as written.
func parseScheme(u *URL, rest string) (string, string) {
	proto := matchString(protocolPattern, rest)
	if proto == "" {
		return rest, ""
	}
	u.Protocol = StringPtr(strings.ToLower(proto))
	return rest[len(proto):], proto
}

// parseSlashes consumes the "//" authority marker when an authority applies.
func parseSlashes(u *URL, rest string, forceHost bool) string {
	if !forceHost && u.Protocol == nil && !matches(hostPattern, rest) {
		return rest
	}
	if strings.HasPrefix(rest, "//") && !isHostless(u.Protocol) {
		u.Slashes = true
		return rest[2:]
	}
	return rest
}

// hasAuthority reports whether the remainder starts with an authority. The
// slashed set is checked against the scheme as written, so "HTTP:host" takes
// an authority while "http:host" does not.
func hasAuthority(u *URL, scheme string) bool {
	if isHostless(u.Protocol) {
		return false
	}
	return u.Slashes || (scheme != "" && !slashedProtocol[scheme])
}

// splitAuthority scans the remainder for the end of the authority. The last
// '@' before a host terminator separates userinfo; the first character that
// cannot be part of a host ends the host.
func splitAuthority(u *URL, rest string) (host, remainder string) {
	atSign, nonHost := -1, -1
scan:
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case c == '#' || c == '/' || c == '?':
			if nonHost == -1 {
				nonHost = i
			}
			break scan
		case c == '@':
			atSign = i
			nonHost = -1
		case nonHostChar[c]:
			if nonHost == -1 {
				nonHost = i
			}
		}
	}

	start := 0
	if atSign != -1 {
		u.Auth = StringPtr(querystring.Unescape(rest[:atSign]))
		start = atSign + 1
	}
	if nonHost == -1 {
		return rest[start:], ""
	}
	return rest[start:nonHost], rest[nonHost:]
}

// splitHostPort pulls a trailing ":digits" off host. A bare ':' is dropped
// without recording a port.
func splitHostPort(u *URL, host string) string {
	if port := matchString(portPattern, host); port != "" {
		if port != ":" {
			u.Port = StringPtr(port[1:])
		}
		host = host[:len(host)-len(port)]
	}
	return host
}

// utf16Len counts hostname in UTF-16 code units, the unit the length limit is
// defined in.
func utf16Len(hostname string) int {
	n := 0
	for _, r := range hostname {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func isIPv6Hostname(hostname string) bool {
	return len(hostname) >= 2 && hostname[0] == '[' && hostname[len(hostname)-1] == ']'
}

// parseAuthority fills Auth, Host, Hostname and Port and returns what is left
// of the remainder for path processing.
func (p *Parser) parseAuthority(u *URL, rest, input string) (string, error) {
	host, rest := splitAuthority(u, rest)

	hostname := splitHostPort(u, host)
	ipv6 := isIPv6Hostname(hostname)

	if !ipv6 {
		for i := 0; i < len(hostname); i++ {
			if !isHostnameChar(hostname[i]) {
				p.logger.Debug().
					Str("url", input).
					Str("hostname", hostname).
					Int("index", i).
					Msg("Hostname truncated at invalid character, remainder moved to path")
				rest = "/" + hostname[i:] + rest
				hostname = hostname[:i]
				break
			}
		}
	}

	if n := utf16Len(hostname); n > hostnameMaxLen {
		p.logger.Debug().Str("url", input).Int("length", n).Msg("Hostname exceeds maximum length, cleared")
		hostname = ""
	} else {
		hostname = strings.ToLower(hostname)
	}

	if hostname != "" && !ipv6 {
		// Errors are ignored: the lenient profile still returns its best effort.
		encoded, _ := hostnameProfile.ToASCII(hostname)
		if encoded == "" || strings.ContainsAny(encoded, forbiddenHostChars) {
			p.logger.Warn().Str("url", input).Str("hostname", encoded).Msg("Rejected hostname after ASCII-compatible encoding")
			return "", errorwrapper.NewInvalidURLError(input, encoded)
		}
		hostname = encoded
	}

	if u.Port != nil {
		u.Host = StringPtr(hostname + ":" + *u.Port)
	} else {
		u.Host = StringPtr(hostname)
	}

	if ipv6 {
		if len(hostname) >= 2 {
			hostname = hostname[1 : len(hostname)-1]
		}
		if !strings.HasPrefix(rest, "/") {
			rest = "/" + rest
		}
	}
	u.Hostname = StringPtr(hostname)

	return rest, nil
}
