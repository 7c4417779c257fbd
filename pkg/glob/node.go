package glob

import "src.dirglob.org/pkg/fnmatch"

// A node is one step of a compiled pattern. Nodes form a singly
// linked, acyclic chain terminating in a leaf (constantEntry,
// entryMatch or dirsOnly). Once compiled a chain is an immutable
// template; walking it never mutates it, so it may be walked any
// number of times.
//
// Every node that produces a path segment carries sep, the separator
// run that joined the segment to its parent in the pattern text. An
// empty sep stands for "/".
type node interface{ isNode() }

// constantDir extends the current path with a fixed directory string
// (possibly several folded segments) without touching the filesystem;
// a descendant step performs the existence check, so a folded literal
// run costs one probe instead of one per segment.
type constantDir struct {
	next  node
	sep   string
	flags fnmatch.Flags
	dir   string
}

// constantEntry probes for a fixed entry name, once per suffix.
// Every suffix that exists is emitted, in suffix order.
type constantEntry struct {
	sep      string
	flags    fnmatch.Flags
	name     string
	suffixes []string
}

// rootDir anchors the walk at the filesystem root. It only ever
// appears as the outermost node, for patterns starting with a
// separator.
type rootDir struct {
	next  node
	flags fnmatch.Flags
}

// dirMatch descends into every subdirectory whose name matches a
// wildcard pattern.
type dirMatch struct {
	next    node
	sep     string
	flags   fnmatch.Flags
	pattern string
}

// entryMatch emits every listed entry whose name, extended with each
// suffix in turn, matches a wildcard pattern.
type entryMatch struct {
	sep      string
	flags    fnmatch.Flags
	pattern  string
	suffixes []string
}

// recursiveDirs implements a ** segment that has an enclosing parent
// segment. startRecursiveDirs implements ** as the very first pattern
// component, anchored at the working directory. For any given **
// exactly one of the two is compiled.
type recursiveDirs struct {
	next  node
	sep   string
	flags fnmatch.Flags
}

type startRecursiveDirs struct {
	next  node
	sep   string
	flags fnmatch.Flags
}

// dirsOnly emits the current path itself when it is a directory; it
// is the leaf of patterns written with a trailing separator.
type dirsOnly struct {
	sep   string
	flags fnmatch.Flags
}

func (*constantDir) isNode()        {}
func (*constantEntry) isNode()      {}
func (*rootDir) isNode()            {}
func (*dirMatch) isNode()           {}
func (*entryMatch) isNode()         {}
func (*recursiveDirs) isNode()      {}
func (*startRecursiveDirs) isNode() {}
func (*dirsOnly) isNode()           {}

// setSep records the separator run that precedes a node's segment in
// the pattern. It is only called during compilation, before the chain
// is published.
func setSep(n node, sep string) {
	switch n := n.(type) {
	case *constantDir:
		n.sep = sep
	case *constantEntry:
		n.sep = sep
	case *dirMatch:
		n.sep = sep
	case *entryMatch:
		n.sep = sep
	case *recursiveDirs:
		n.sep = sep
	case *startRecursiveDirs:
		n.sep = sep
	case *dirsOnly:
		n.sep = sep
	}
}

// pathJoin joins a produced segment to its parent path, reusing the
// separator run the pattern was written with.
func pathJoin(parent, sep, ent string) string {
	if parent == "" {
		return ent
	}
	if parent == "/" {
		return "/" + ent
	}
	if sep == "" {
		sep = "/"
	}
	return parent + sep + ent
}
