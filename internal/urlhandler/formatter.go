package urlhandler

import (
	"strings"

	"github.com/aleister1102/legacyurl/internal/querystring"
)

// Format serializes u. It depends only on the record's fields, so records
// built by hand format the same way as parsed ones.
func Format(u *URL) string {
	if u == nil {
		return ""
	}

	auth := StringFromPtr(u.Auth)
	if auth != "" {
		auth = querystring.EscapeWith(auth, &authSafe) + "@"
	}

	protocol := StringFromPtr(u.Protocol)
	pathname := StringFromPtr(u.Pathname)
	hash := StringFromPtr(u.Hash)

	host := ""
	if isSet(u.Host) {
		host = auth + *u.Host
	} else if isSet(u.Hostname) {
		hostname := *u.Hostname
		if strings.Contains(hostname, ":") && !isIPv6Hostname(hostname) {
			hostname = "[" + hostname + "]"
		}
		host = auth + hostname
		if isSet(u.Port) {
			host += ":" + *u.Port
		}
	}

	search := StringFromPtr(u.Search)
	if search == "" && u.Query.Values != nil {
		if query := u.Query.Values.Encode(); query != "" {
			search = "?" + query
		}
	}

	if protocol != "" && !strings.HasSuffix(protocol, ":") {
		protocol += ":"
	}

	pathname = escapePathDelimiters(pathname)

	// Only slashed protocols get the "//" unless the record already had it.
	if u.Slashes || slashedProtocol[protocol] {
		if u.Slashes || host != "" {
			if pathname != "" && pathname[0] != '/' {
				pathname = "/" + pathname
			}
			host = "//" + host
		} else if strings.HasPrefix(protocol, "file") {
			host = "//"
		}
	}

	search = strings.ReplaceAll(search, "#", "%23")

	if hash != "" && hash[0] != '#' {
		hash = "#" + hash
	}
	if search != "" && search[0] != '?' {
		search = "?" + search
	}

	return protocol + host + pathname + search + hash
}

// escapePathDelimiters escapes '#' and '?' so a pathname never reads as a
// fragment or query once serialized.
func escapePathDelimiters(pathname string) string {
	if !strings.ContainsAny(pathname, "#?") {
		return pathname
	}
	var b strings.Builder
	b.Grow(len(pathname) + 4)
	for i := 0; i < len(pathname); i++ {
		switch pathname[i] {
		case '#':
			b.WriteString("%23")
		case '?':
			b.WriteString("%3F")
		default:
			b.WriteByte(pathname[i])
		}
	}
	return b.String()
}
