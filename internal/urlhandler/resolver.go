package urlhandler

import "strings"

// ResolveObject resolves reference against base and returns a new record.
// Neither argument is modified. A nil base returns reference as given.
//
// The branches below are ordered; each one assumes the earlier ones did not
// match.
func (p *Parser) ResolveObject(base, reference *URL) *URL {
	if base == nil {
		return reference
	}
	if reference == nil {
		reference = &URL{}
	}

	relative := reference.Clone()
	result := base.Clone()

	// The fragment always comes from the reference, even when it has none.
	result.Hash = relative.Hash

	if Format(relative) == "" {
		result.Href = Format(result)
		return result
	}

	if relative.Slashes && relative.Protocol == nil {
		return resolveProtocolRelative(result, relative)
	}

	if relative.Protocol != nil && *relative.Protocol != StringFromPtr(result.Protocol) {
		return resolveCrossProtocol(result, relative)
	}

	return resolveSameProtocol(result, relative)
}

// resolveProtocolRelative handles "//host/path": everything but the protocol
// comes from the reference.
func resolveProtocolRelative(result, relative *URL) *URL {
	protocol := result.Protocol
	*result = *relative
	result.Protocol = protocol

	if isSlashed(result.Protocol) && isSet(result.Hostname) && !isSet(result.Pathname) {
		result.Pathname = StringPtr("/")
		result.Path = StringPtr("/" + StringFromPtr(result.Search))
	}

	result.Href = Format(result)
	return result
}

// resolveCrossProtocol handles a reference whose protocol differs from the
// base's.
func resolveCrossProtocol(result, relative *URL) *URL {
	// Opaque protocols replace the record wholesale.
	if !isSlashed(relative.Protocol) {
		*result = *relative
		result.Href = Format(result)
		return result
	}

	result.Protocol = relative.Protocol
	if !isSet(relative.Host) && !isFileProtocol(*relative.Protocol) && !isHostless(relative.Protocol) {
		// A slashed protocol must have a host: take the first non-empty
		// path segment.
		relPath := strings.Split(StringFromPtr(relative.Pathname), "/")
		host := ""
		for len(relPath) > 0 {
			host, relPath = relPath[0], relPath[1:]
			if host != "" {
				break
			}
		}
		relative.Host = StringPtr(host)
		if !isSet(relative.Hostname) {
			relative.Hostname = StringPtr("")
		}
		if len(relPath) == 0 || relPath[0] != "" {
			relPath = append([]string{""}, relPath...)
		}
		if len(relPath) < 2 {
			relPath = append([]string{""}, relPath...)
		}
		result.Pathname = StringPtr(strings.Join(relPath, "/"))
	} else {
		result.Pathname = relative.Pathname
	}

	result.Search = relative.Search
	result.Query = relative.Query
	result.Host = StringPtr(StringFromPtr(relative.Host))
	result.Auth = relative.Auth
	if isSet(relative.Hostname) {
		result.Hostname = relative.Hostname
	} else {
		result.Hostname = relative.Host
	}
	result.Port = relative.Port
	result.Path = nil
	setPath(result)
	result.Slashes = result.Slashes || relative.Slashes
	result.Href = Format(result)
	return result
}

func isFileProtocol(protocol string) bool {
	return protocol == "file" || protocol == "file:"
}

// resolveSameProtocol merges paths and removes dot segments.
func resolveSameProtocol(result, relative *URL) *URL {
	isSourceAbs := strings.HasPrefix(StringFromPtr(result.Pathname), "/")
	isRelAbs := isSet(relative.Host) || strings.HasPrefix(StringFromPtr(relative.Pathname), "/")
	mustEndAbs := isRelAbs || isSourceAbs || (isSet(result.Host) && isSet(relative.Pathname))
	removeAllDots := mustEndAbs

	var srcPath, relPath []string
	if isSet(result.Pathname) {
		srcPath = strings.Split(*result.Pathname, "/")
	}
	if isSet(relative.Pathname) {
		relPath = strings.Split(*relative.Pathname, "/")
	}

	// Without leading slashes ("mailto:"-like protocols) relative links may
	// climb into the host, so the host is treated as the first segment.
	noLeadingSlashes := isSet(result.Protocol) && !isSlashed(result.Protocol)
	if noLeadingSlashes {
		result.Hostname = StringPtr("")
		result.Port = nil
		if isSet(result.Host) {
			srcPath = foldHostIntoPath(srcPath, *result.Host)
		}
		result.Host = StringPtr("")
		if isSet(relative.Protocol) {
			relative.Hostname = nil
			relative.Port = nil
			if isSet(relative.Host) {
				relPath = foldHostIntoPath(relPath, *relative.Host)
			}
			relative.Host = nil
		}
		mustEndAbs = mustEndAbs && (firstIsEmpty(relPath) || firstIsEmpty(srcPath))
	}

	switch {
	case isRelAbs:
		if relative.Host != nil {
			if !samePtrValue(result.Host, relative.Host) {
				result.Auth = nil
			}
			result.Host = relative.Host
			result.Port = relative.Port
		}
		if relative.Hostname != nil {
			if !samePtrValue(result.Hostname, relative.Hostname) {
				result.Auth = nil
			}
			result.Hostname = relative.Hostname
		}
		result.Search = relative.Search
		result.Query = relative.Query
		srcPath = relPath

	case len(relPath) > 0:
		// Drop the base's last segment and append the reference's path.
		if len(srcPath) > 0 {
			srcPath = srcPath[:len(srcPath)-1]
		}
		srcPath = append(srcPath, relPath...)
		result.Search = relative.Search
		result.Query = relative.Query

	case relative.Search != nil:
		// Only the query changes, e.g. href="?foo".
		if noLeadingSlashes {
			var host *string
			if len(srcPath) > 0 {
				host = StringPtr(srcPath[0])
				srcPath = srcPath[1:]
			}
			result.Hostname = host
			result.Host = host
			splitAuthInHost(result)
		}
		result.Search = relative.Search
		result.Query = relative.Query
		if result.Pathname != nil || result.Search != nil {
			result.Path = StringPtr(StringFromPtr(result.Pathname) + StringFromPtr(result.Search))
		}
		result.Href = Format(result)
		return result
	}

	if len(srcPath) == 0 {
		result.Pathname = nil
		if isSet(result.Search) {
			result.Path = StringPtr("/" + *result.Search)
		} else {
			result.Path = nil
		}
		result.Href = Format(result)
		return result
	}

	// A path ending in "." or ".." gets a trailing slash; one ending in any
	// other non-empty segment must not.
	last := srcPath[len(srcPath)-1]
	hasTrailingSlash := ((isSet(result.Host) || isSet(relative.Host) || len(srcPath) > 1) &&
		(last == "." || last == "..")) || last == ""

	srcPath, up := removeDotSegments(srcPath)

	// Non-absolute paths may climb above the root: restore the leading "..".
	if !mustEndAbs && !removeAllDots {
		for ; up > 0; up-- {
			srcPath = append([]string{".."}, srcPath...)
		}
	}

	if mustEndAbs && (len(srcPath) == 0 || (srcPath[0] != "" && srcPath[0][0] != '/')) {
		srcPath = append([]string{""}, srcPath...)
	}

	if hasTrailingSlash && !strings.HasSuffix(strings.Join(srcPath, "/"), "/") {
		srcPath = append(srcPath, "")
	}

	isAbsolute := len(srcPath) > 0 && (srcPath[0] == "" || srcPath[0][0] == '/')

	// Put the host back.
	if noLeadingSlashes {
		host := ""
		if !isAbsolute && len(srcPath) > 0 {
			host, srcPath = srcPath[0], srcPath[1:]
		}
		result.Hostname = StringPtr(host)
		result.Host = StringPtr(host)
		splitAuthInHost(result)
	}

	mustEndAbs = mustEndAbs || (isSet(result.Host) && len(srcPath) > 0)
	if mustEndAbs && !isAbsolute {
		srcPath = append([]string{""}, srcPath...)
	}

	if len(srcPath) > 0 {
		result.Pathname = StringPtr(strings.Join(srcPath, "/"))
	} else {
		result.Pathname = nil
		result.Path = nil
	}
	if result.Pathname != nil || result.Search != nil {
		result.Path = StringPtr(StringFromPtr(result.Pathname) + StringFromPtr(result.Search))
	}

	if isSet(relative.Auth) {
		result.Auth = relative.Auth
	}
	result.Slashes = result.Slashes || relative.Slashes
	result.Href = Format(result)
	return result
}

// removeDotSegments drops "." segments and collapses ".." against the
// preceding segment, scanning right to left. It returns the number of ".."
// segments that climbed past the start.
func removeDotSegments(segments []string) ([]string, int) {
	up := 0
	for i := len(segments) - 1; i >= 0; i-- {
		switch {
		case segments[i] == ".":
			segments = append(segments[:i], segments[i+1:]...)
		case segments[i] == "..":
			segments = append(segments[:i], segments[i+1:]...)
			up++
		case up > 0:
			segments = append(segments[:i], segments[i+1:]...)
			up--
		}
	}
	return segments, up
}

// foldHostIntoPath makes host the first path segment, replacing an empty
// leading segment if there is one.
func foldHostIntoPath(segments []string, host string) []string {
	if len(segments) > 0 && segments[0] == "" {
		segments[0] = host
		return segments
	}
	return append([]string{host}, segments...)
}

func firstIsEmpty(segments []string) bool {
	return len(segments) > 0 && segments[0] == ""
}

// splitAuthInHost moves a stray "user@" prefix out of the host, which
// happens for references like "local2@domain2" against "mailto:" bases.
func splitAuthInHost(u *URL) {
	if !isSet(u.Host) || strings.Index(*u.Host, "@") <= 0 {
		return
	}
	parts := strings.Split(*u.Host, "@")
	u.Auth = StringPtr(parts[0])
	u.Host = StringPtr(parts[1])
	u.Hostname = u.Host
}
