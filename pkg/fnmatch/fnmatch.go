// Package fnmatch matches a single path component against a
// shell-style wildcard pattern, in the manner of POSIX fnmatch(3):
// "*" matches any run of characters (possibly empty), "?" matches any
// single character, and "[...]" matches one character out of a set
// that may contain ranges and may be negated with a leading "!" or
// "^". A backslash escapes the next character unless NoEscape is set.
package fnmatch

import "unicode/utf8"

// Flags alter how patterns are interpreted. The zero value gives
// plain POSIX semantics.
type Flags uint

const (
	// NoEscape makes backslash an ordinary character instead of an
	// escape character.
	NoEscape Flags = 1 << iota
	// DotMatch lets wildcards match a leading dot in the candidate
	// name. Without it a name starting with "." is only matched by a
	// pattern that starts with a literal ".".
	DotMatch
)

// Match reports whether name matches pattern in its entirety.
func Match(pattern, name string, flags Flags) bool {
	segs := parse(pattern, flags)
	if len(name) > 0 && name[0] == '.' && flags&DotMatch == 0 {
		// A leading dot must be matched by a literal dot.
		if len(segs) == 0 {
			return false
		}
		if lit, ok := segs[0].(literal); !ok || lit.data[0] != '.' {
			return false
		}
	}
	return match(segs, name)
}

// match matches name against segments by splitting the segments into
// chunks. A chunk is an optional star followed by a run of
// fixed-length segments; a star lets the chunk slide forward through
// name one rune at a time.
func match(segs []segment, name string) bool {
segs:
	for len(segs) > 0 {
		var i int
		for i = 1; i < len(segs); i++ {
			if isStar(segs[i]) {
				break
			}
		}

		chunk := segs[:i]
		startsWithStar := isStar(chunk[0])
		if startsWithStar {
			chunk = chunk[1:]
		}
		segs = segs[i:]

		// Match at the current position. If this is the last chunk,
		// the match must exhaust name.
		ok, rest := matchFixed(chunk, name)
		if ok && (rest == "" || len(segs) > 0) {
			name = rest
			continue
		}

		if startsWithStar {
			for j := 0; j < len(name); {
				_, n := utf8.DecodeRuneInString(name[j:])
				j += n
				// Match after the star has consumed name[:j].
				ok, rest := matchFixed(chunk, name[j:])
				if ok && (rest == "" || len(segs) > 0) {
					name = rest
					continue segs
				}
			}
		}
		return false
	}
	return name == ""
}

// matchFixed matches a run of fixed-length segments against a prefix
// of name, returning the remaining part of name on success.
func matchFixed(segs []segment, name string) (bool, string) {
	for _, seg := range segs {
		if name == "" {
			return false, ""
		}
		switch seg := seg.(type) {
		case literal:
			n := len(seg.data)
			if len(name) < n || name[:n] != seg.data {
				return false, ""
			}
			name = name[n:]
		case wild:
			r, n := utf8.DecodeRuneInString(name)
			if seg.match != nil && !seg.match(r) {
				return false, ""
			}
			name = name[n:]
		}
	}
	return true, name
}
