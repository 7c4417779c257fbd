// Package glob implements shell-style filesystem globbing: matching
// of patterns containing wildcards (*, ?, [...]), the recursive **
// and brace alternation ({a,b}) against the real filesystem.
//
// Globbing never fails as a whole. An unmatched pattern, like in a
// shell, is not an error; directories that cannot be listed simply
// contribute no matches. Results are not sorted or deduplicated:
// their order is determined by the order the OS lists directory
// entries and by the textual order of brace alternatives.
package glob

import (
	"src.dirglob.org/pkg/fnmatch"
	"src.dirglob.org/pkg/fsutil"
	"src.dirglob.org/pkg/logutil"
)

var logger = logutil.GetLogger("[glob] ")

// Pattern is a compiled pattern: one chain of matching steps per
// brace alternative. A Pattern is an immutable template and may be
// walked any number of times.
type Pattern struct {
	chains []node
}

// Compile compiles a pattern.
func Compile(pattern string, flags fnmatch.Flags) Pattern {
	return CompileSuffixes(pattern, flags, nil)
}

// CompileSuffixes compiles a pattern whose leaf step probes each of
// the given suffixes, in order, for every candidate name. This
// serves callers that resolve a name against several file extensions
// in one pass. A nil suffixes is equivalent to [""].
func CompileSuffixes(pattern string, flags fnmatch.Flags, suffixes []string) Pattern {
	return Pattern{compile(pattern, flags, suffixes, nil)}
}

// Glob compiles pattern and returns the paths matching it. It is
// equivalent to Compile(pattern, flags).Glob().
func Glob(pattern string, flags fnmatch.Flags) []string {
	return Compile(pattern, flags).Glob()
}

// Glob walks the compiled pattern against the filesystem, starting
// from the working directory, and returns the matching paths in
// discovery order, duplicates included. Matches of one brace
// alternative are appended in full before the next alternative
// begins.
func (p Pattern) Glob() []string {
	env := &environ{matches: []string{}}
	for _, chain := range p.chains {
		walk(chain, env, "", "")
	}
	return env.matches
}

// environ accumulates matches for one top-level call. The list is
// append-only and shared by every step of every chain of the call.
type environ struct {
	matches []string
}

// walk interprets one step of a chain. path is the path accumulated
// so far, "" meaning the working directory. sepOverride, when
// non-empty, replaces the separator the step was compiled with; the
// recursive-descent steps use it to run their continuation directly
// on the seed path with the separator that preceded the ** segment.
func walk(n node, env *environ, path, sepOverride string) {
	switch n := n.(type) {
	case *rootDir:
		walk(n.next, env, "/", "")

	case *constantDir:
		walk(n.next, env, pathJoin(path, sepOr(n.sep, sepOverride), n.dir), "")

	case *constantEntry:
		stem := pathJoin(path, sepOr(n.sep, sepOverride), n.name)
		for _, suffix := range n.suffixes {
			if fsutil.Exists(stem + suffix) {
				env.matches = append(env.matches, stem+suffix)
			}
		}

	case *entryMatch:
		names, err := fsutil.ListNames(path)
		if err != nil {
			logger.Println("abandoning branch:", err)
			return
		}
		sep := sepOr(n.sep, sepOverride)
		for _, name := range names {
			for _, suffix := range n.suffixes {
				if full := name + suffix; fnmatch.Match(n.pattern, full, n.flags) {
					env.matches = append(env.matches, pathJoin(path, sep, full))
				}
			}
		}

	case *dirMatch:
		if path != "" && !fsutil.Exists(path) {
			return
		}
		names, err := fsutil.ListNames(path)
		if err != nil {
			logger.Println("abandoning branch:", err)
			return
		}
		sep := sepOr(n.sep, sepOverride)
		for _, name := range names {
			if fnmatch.Match(n.pattern, name, n.flags) {
				if full := pathJoin(path, sep, name); fsutil.IsDir(full) {
					walk(n.next, env, full, "")
				}
			}
		}

	case *dirsOnly:
		if path != "" && fsutil.IsDir(path) {
			env.matches = append(env.matches, path+"/")
		}

	case *recursiveDirs:
		if !fsutil.Exists(path) {
			return
		}
		recurse(n.next, n.sep, n.flags, env, path, []string{path})

	case *startRecursiveDirs:
		// ** as the first pattern component is anchored at the
		// working directory; path is always "" here. Top-level
		// directories seed the descent.
		names, err := fsutil.ListNames("")
		if err != nil {
			logger.Println("abandoning branch:", err)
			return
		}
		var stack []string
		for _, name := range names {
			if name[0] == '.' && n.flags&fnmatch.DotMatch == 0 {
				continue
			}
			if fsutil.IsDirNoFollow(name) {
				stack = append(stack, name)
				walk(n.next, env, name, "")
			}
		}
		recurse(n.next, n.sep, n.flags, env, "", stack)
	}
}

// sepOr resolves the separator a step joins with: its compiled
// separator, unless the caller supplied an override.
func sepOr(sep, override string) string {
	if override != "" {
		return override
	}
	return sep
}

// recurse performs the depth-first descent shared by the two
// recursive-descent variants. The continuation first runs on the seed
// itself, so that ** can match zero directory levels. Every directory
// is pushed exactly once, when first discovered, and symlinks are
// never followed, so the walk terminates on any acyclic tree. Hidden
// directories are skipped unless DotMatch is set, and a directory
// that cannot be listed abandons only its own branch.
func recurse(next node, sep string, flags fnmatch.Flags, env *environ, seed string, stack []string) {
	walk(next, env, seed, sep)

	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		names, err := fsutil.ListNames(path)
		if err != nil {
			logger.Println("abandoning branch:", err)
			continue
		}
		for _, name := range names {
			if name[0] == '.' && flags&fnmatch.DotMatch == 0 {
				continue
			}
			if full := pathJoin(path, sep, name); fsutil.IsDirNoFollow(full) {
				stack = append(stack, full)
				walk(next, env, full, "")
			}
		}
	}
}
