package urlhandler

import "github.com/aleister1102/legacyurl/internal/querystring"

// splitRemainder divides the post-authority remainder into pathname, search
// and hash. The first '#' ends the scan; a '?' only counts before it.
func (p *Parser) splitRemainder(u *URL, rest string, decodeQuery bool) {
	questionIdx, hashIdx := -1, -1
	for i := 0; i < len(rest); i++ {
		if rest[i] == '#' {
			u.Hash = StringPtr(rest[i:])
			hashIdx = i
			break
		}
		if rest[i] == '?' && questionIdx == -1 {
			questionIdx = i
		}
	}

	if questionIdx != -1 {
		end := len(rest)
		if hashIdx != -1 {
			end = hashIdx
		}
		u.Search = StringPtr(rest[questionIdx:end])
		raw := rest[questionIdx+1 : end]
		if decodeQuery {
			u.Query = Query{Values: querystring.Parse(raw, p.queryOptions)}
		} else {
			u.Query = Query{Raw: StringPtr(raw)}
		}
	} else if decodeQuery {
		u.Search = nil
		u.Query = Query{Values: querystring.NewValues()}
	}

	firstIdx := hashIdx
	if questionIdx != -1 {
		firstIdx = questionIdx
	}
	if firstIdx == -1 {
		if rest != "" {
			u.Pathname = StringPtr(rest)
		}
	} else if firstIdx > 0 {
		u.Pathname = StringPtr(rest[:firstIdx])
	}

	if isSlashed(u.Protocol) && isSet(u.Hostname) && !isSet(u.Pathname) {
		u.Pathname = StringPtr("/")
	}

	setPath(u)
}

// setPath keeps Path equal to Pathname + Search when either is present.
func setPath(u *URL) {
	if isSet(u.Pathname) || isSet(u.Search) {
		u.Path = StringPtr(StringFromPtr(u.Pathname) + StringFromPtr(u.Search))
	}
}
