package fnmatch

import (
	"strings"
	"unicode/utf8"
)

// A segment is either a literal or a wild.
type segment interface{ isSegment() }

type literal struct {
	data string
}

type wild struct {
	typ wildType
	// Constraint on the matched rune; nil matches any rune. Only set
	// for question segments produced from a character class.
	match func(rune) bool
}

type wildType int

const (
	question wildType = iota
	star
)

func (literal) isSegment() {}
func (wild) isSegment()    {}

func isStar(seg segment) bool {
	w, ok := seg.(wild)
	return ok && w.typ == star
}

// parse parses a pattern into segments. Consecutive stars collapse
// into one; an unterminated "[" is a literal "[".
func parse(pattern string, flags Flags) []segment {
	escape := flags&NoEscape == 0
	var segs []segment
	p := &parser{pattern, 0, 0}

rune:
	for {
		r := p.next()
		switch r {
		case eof:
			break rune
		case '?':
			segs = append(segs, wild{typ: question})
		case '*':
			for p.next() == '*' {
			}
			p.backup()
			segs = append(segs, wild{typ: star})
		case '[':
			if m, ok := p.class(escape); ok {
				segs = append(segs, wild{typ: question, match: m})
			} else {
				segs = appendLiteral(segs, "[")
			}
		default:
			var lit strings.Builder
		literal:
			for {
				switch r {
				case '?', '*', '[', eof:
					break literal
				case '\\':
					if escape {
						r = p.next()
						if r == eof {
							lit.WriteByte('\\')
							break literal
						}
					}
					lit.WriteRune(r)
				default:
					lit.WriteRune(r)
				}
				r = p.next()
			}
			p.backup()
			segs = appendLiteral(segs, lit.String())
		}
	}
	return segs
}

// appendLiteral appends a literal segment, merging it into a
// preceding literal if there is one.
func appendLiteral(segs []segment, data string) []segment {
	if len(segs) > 0 {
		if lit, ok := segs[len(segs)-1].(literal); ok {
			segs[len(segs)-1] = literal{lit.data + data}
			return segs
		}
	}
	return append(segs, literal{data})
}

// class parses a character class, assuming the opening "[" has been
// consumed. It reports failure without consuming input when the class
// is not terminated by "]".
func (ps *parser) class(escape bool) (func(rune) bool, bool) {
	start := ps.pos
	fail := func() (func(rune) bool, bool) {
		ps.pos = start
		ps.overEOF = 0
		return nil, false
	}

	negate := false
	switch ps.next() {
	case '!', '^':
		negate = true
	default:
		ps.backup()
	}

	type span struct{ lo, hi rune }
	var spans []span
	first := true
	for {
		r := ps.next()
		if r == eof {
			return fail()
		}
		if r == ']' && !first {
			break
		}
		first = false
		if r == '\\' && escape {
			r = ps.next()
			if r == eof {
				return fail()
			}
		}
		lo, hi := r, r
		// A "-" between two characters forms a range; elsewhere it is
		// a literal "-".
		if ps.next() == '-' {
			r = ps.next()
			switch r {
			case eof:
				return fail()
			case ']':
				ps.backup()
				ps.backup()
			default:
				if r == '\\' && escape {
					r = ps.next()
					if r == eof {
						return fail()
					}
				}
				hi = r
			}
		} else {
			ps.backup()
		}
		spans = append(spans, span{lo, hi})
	}

	return func(r rune) bool {
		for _, s := range spans {
			if s.lo <= r && r <= s.hi {
				return !negate
			}
		}
		return negate
	}, true
}

type parser struct {
	src     string
	pos     int
	overEOF int
}

const eof rune = -1

func (ps *parser) next() rune {
	if ps.pos == len(ps.src) {
		ps.overEOF++
		return eof
	}
	r, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
	ps.pos += s
	return r
}

func (ps *parser) backup() {
	if ps.overEOF > 0 {
		ps.overEOF--
		return
	}
	_, s := utf8.DecodeLastRuneInString(ps.src[:ps.pos])
	ps.pos -= s
}
