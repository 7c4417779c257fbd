package glob

import (
	"strings"

	"src.dirglob.org/pkg/fnmatch"
)

// splitPath splits a pattern into alternating segment and separator
// tokens. A run of separators collapses into a single token that
// keeps the run text. A pattern starting with a separator yields a
// leading empty segment, marking an absolute pattern; trailing empty
// tokens are dropped. A pattern without separators yields itself as
// the only token.
func splitPath(pattern string) []string {
	var tokens []string
	last := 0
	for i := 0; i < len(pattern); {
		if pattern[i] != '/' {
			i++
			continue
		}
		j := i + 1
		for j < len(pattern) && pattern[j] == '/' {
			j++
		}
		tokens = append(tokens, pattern[last:i], pattern[i:j])
		last = j
		i = j
	}
	if last > 0 {
		tokens = append(tokens, pattern[last:])
	} else {
		tokens = append(tokens, pattern)
	}
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// literalSegment reports whether a directory segment is free of
// wildcard syntax and can be consumed as a constant. "]" counts as
// wildcard syntax because it can close a character class.
func literalSegment(s string) bool {
	return s != "" && !strings.ContainsAny(s, "*?]")
}

// constantName reports whether a leaf name consists solely of
// letters, digits, "." and "_", and can therefore be probed directly
// instead of matched against a directory listing.
func constantName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		case c == '.' || c == '_':
		default:
			return false
		}
	}
	return true
}

// compileSingle compiles one brace-free pattern into a chain of
// steps, built leaf-first from the back of the pattern. It reports
// failure when the pattern yields no usable leaf (the empty pattern).
//
// A nil suffixes is equivalent to [""]; a non-nil list makes the leaf
// probe each suffix in order for every candidate name.
func compileSingle(pattern string, flags fnmatch.Flags, suffixes []string) (node, bool) {
	if pattern == "" {
		return nil, false
	}
	if suffixes == nil {
		suffixes = []string{""}
	}
	parts := splitPath(pattern)

	var last node
	if strings.HasSuffix(pattern, "/") {
		last = &dirsOnly{flags: flags}
	} else {
		name := parts[len(parts)-1]
		parts = parts[:len(parts)-1]
		if constantName(name) {
			last = &constantEntry{flags: flags, name: name, suffixes: suffixes}
		} else {
			last = &entryMatch{flags: flags, pattern: name, suffixes: suffixes}
		}
	}

	for len(parts) > 0 {
		setSep(last, parts[len(parts)-1])
		parts = parts[:len(parts)-1]
		dir := parts[len(parts)-1]
		parts = parts[:len(parts)-1]

		switch {
		case dir == "**":
			if len(parts) > 0 {
				last = &recursiveDirs{next: last, flags: flags}
			} else {
				last = &startRecursiveDirs{next: last, flags: flags}
			}
		case literalSegment(dir):
			// Literal-prefix folding: absorb immediately preceding
			// literal segments, rejoined with their original
			// separator runs, into one constant directory step.
			for len(parts) >= 2 && literalSegment(parts[len(parts)-2]) {
				dir = parts[len(parts)-2] + parts[len(parts)-1] + dir
				parts = parts[:len(parts)-2]
			}
			last = &constantDir{next: last, flags: flags, dir: dir}
		case dir != "":
			last = &dirMatch{next: last, flags: flags, pattern: dir}
		}
	}

	if pattern[0] == '/' {
		last = &rootDir{next: last, flags: flags}
	}
	return last, true
}
