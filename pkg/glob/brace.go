package glob

import "src.dirglob.org/pkg/fnmatch"

// compile expands brace alternation and compiles each resulting
// concrete pattern, appending one chain per alternative to chains in
// left-to-right textual order. Alternatives may themselves contain
// braces; the recursion depth equals the brace nesting depth of the
// pattern. A "{" with no matching "}" is ordinary literal text.
func compile(pattern string, flags fnmatch.Flags, suffixes []string, chains []node) []node {
	escape := flags&fnmatch.NoEscape == 0
	lbrace, rbrace := braceRange(pattern, escape)
	if lbrace < 0 {
		if n, ok := compileSingle(pattern, flags, suffixes); ok {
			chains = append(chains, n)
		}
		return chains
	}

	front, back := pattern[:lbrace], pattern[rbrace+1:]
	for _, alt := range alternatives(pattern[lbrace+1:rbrace], escape) {
		chains = compile(front+alt+back, flags, suffixes, chains)
	}
	return chains
}

// braceRange locates the first unescaped "{" and its matching "}",
// counting nesting. It returns (-1, -1) when the pattern has no
// complete brace group.
func braceRange(pattern string, escape bool) (lbrace, rbrace int) {
	lbrace = -1
	nest := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if escape {
				i++
			}
		case '{':
			if lbrace < 0 {
				lbrace = i
			}
			nest++
		case '}':
			if lbrace >= 0 {
				nest--
				if nest == 0 {
					return lbrace, i
				}
			}
		}
	}
	return -1, -1
}

// alternatives splits the body of a brace group on unescaped commas
// at nesting depth zero.
func alternatives(body string, escape bool) []string {
	var alts []string
	nest := 0
	last := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			if escape {
				i++
			}
		case '{':
			nest++
		case '}':
			nest--
		case ',':
			if nest == 0 {
				alts = append(alts, body[last:i])
				last = i + 1
			}
		}
	}
	return append(alts, body[last:])
}
