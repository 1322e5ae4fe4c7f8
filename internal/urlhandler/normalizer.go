package urlhandler

import (
	"strings"
	"unicode/utf8"
)

// normalizedInput is the outcome of the first scan over a raw URL.
type normalizedInput struct {
	rest    string // trimmed, with backslashes before '?'/'#' turned into '/'
	hasHash bool
	hasAt   bool // '@' seen before the first '?' or '#'
}

// normalizeState tracks the indices of the single normalizing scan.
type normalizeState struct {
	start   int // first non-whitespace byte, -1 until seen
	end     int // start of the trailing whitespace run, -1 if none
	inWS    bool
	split   bool // a '?' or '#' has been seen
	lastPos int  // first byte not yet copied into rest
	rest    strings.Builder
}

// normalize trims whitespace and rewrites backslashes in one pass. Backslash
// conversion stops at the first '?' or '#'; '#' detection continues after it.
func normalize(input string) normalizedInput {
	st := normalizeState{start: -1, end: -1}
	var out normalizedInput

	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		ws := isWhitespace(r)

		if st.start == -1 {
			if ws {
				i += size
				continue
			}
			st.start = i
			st.lastPos = i
		} else if st.inWS {
			if !ws {
				st.end = -1
				st.inWS = false
			}
		} else if ws {
			st.end = i
			st.inWS = true
		}

		if !st.split {
			switch r {
			case '@':
				out.hasAt = true
			case '#':
				out.hasHash = true
				st.split = true
			case '?':
				st.split = true
			case '\\':
				st.rest.WriteString(input[st.lastPos:i])
				st.rest.WriteByte('/')
				st.lastPos = i + 1
			}
		} else if r == '#' {
			out.hasHash = true
		}
		i += size
	}

	out.rest = st.finish(input)
	return out
}

func (st *normalizeState) finish(input string) string {
	if st.start == -1 {
		return ""
	}
	if st.lastPos == st.start {
		// no backslash was converted
		if st.end == -1 {
			return input[st.start:]
		}
		return input[st.start:st.end]
	}
	if st.end == -1 {
		st.rest.WriteString(input[st.lastPos:])
	} else if st.lastPos < st.end {
		st.rest.WriteString(input[st.lastPos:st.end])
	}
	return st.rest.String()
}
