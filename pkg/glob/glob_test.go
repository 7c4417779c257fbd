package glob

import (
	"os"
	"runtime"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"src.dirglob.org/pkg/fnmatch"
	"src.dirglob.org/pkg/must"
	"src.dirglob.org/pkg/testutil"
)

// The order of entries within one directory listing depends on the
// OS, so most tests sort both sides before comparing. Tests whose
// subject is discovery order itself compare unsorted and only use
// patterns whose order does not depend on listings.

func sorted(paths []string) []string {
	sorted := append([]string{}, paths...)
	sort.Strings(sorted)
	return sorted
}

func testGlob(t *testing.T, pattern string, flags fnmatch.Flags, want []string) {
	t.Helper()
	got := sorted(Glob(pattern, flags))
	if diff := cmp.Diff(sorted(want), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Glob(%q) (-want +got):\n%s", pattern, diff)
	}
}

func TestGlob(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"a":     testutil.Dir{"X": "", "Y": ""},
		"b":     testutil.Dir{"X": ""},
		"c":     testutil.Dir{"Y": ""},
		"d1":    testutil.Dir{"e": testutil.Dir{"f": testutil.Dir{"g": testutil.Dir{"X": ""}}}},
		"d2":    testutil.Dir{"e": testutil.Dir{"f": testutil.Dir{"g": testutil.Dir{"X": ""}}}},
		"dX":    "",
		"lorem": "",
		"ipsum": "",
	})

	for _, tc := range []struct {
		pattern string
		want    []string
	}{
		{"*", []string{"a", "b", "c", "d1", "d2", "dX", "lorem", "ipsum"}},
		{"*/", []string{"a/", "b/", "c/", "d1/", "d2/"}},
		{"*/X", []string{"a/X", "b/X"}},
		{"*/*/*", []string{"d1/e/f", "d2/e/f"}},
		{"l*m", []string{"lorem"}},
		{"d?", []string{"d1", "d2", "dX"}},
		{"[il]*m", []string{"ipsum", "lorem"}},
		{"a/[XY]", []string{"a/X", "a/Y"}},
		{"d1/e/f/g/X", []string{"d1/e/f/g/X"}},
		{"d[12]/e/f/g/X", []string{"d1/e/f/g/X", "d2/e/f/g/X"}},
		{"**/X", []string{"a/X", "b/X", "d1/e/f/g/X", "d2/e/f/g/X"}},
		{"d1/**/X", []string{"d1/e/f/g/X"}},
		{"**/g/X", []string{"d1/e/f/g/X", "d2/e/f/g/X"}},
		{"nomatch*", nil},
		{"", nil},
	} {
		testGlob(t, tc.pattern, 0, tc.want)
	}
}

func TestGlob_ConstantPattern(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"lorem": ""})

	testGlob(t, "lorem", 0, []string{"lorem"})
	testGlob(t, "nope", 0, nil)
}

func TestGlob_Idempotent(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"a": testutil.Dir{"x": "", "y": ""},
		"b": testutil.Dir{"x": ""},
	})

	first := Glob("*/x", 0)
	second := Glob("*/x", 0)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two identical calls disagree (-first +second):\n%s", diff)
	}
}

func TestGlob_CompiledPatternIsReusable(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"x": ""})

	p := Compile("x", 0)
	first := p.Glob()
	second := p.Glob()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two walks of one Pattern disagree (-first +second):\n%s", diff)
	}
}

func TestGlob_BraceAlternativesKeepTextualOrder(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"abd": "", "acd": ""})

	// All matches of "abd" must precede all matches of "acd",
	// regardless of listing order.
	got := Glob("a{b,c}d", 0)
	want := []string{"abd", "acd"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Glob(%q) (-want +got):\n%s", "a{b,c}d", diff)
	}
}

func TestGlob_NestedBracesExpandInOrder(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"abcf": "", "abdf": "", "aef": ""})

	got := Glob("a{b{c,d},e}f", 0)
	want := []string{"abcf", "abdf", "aef"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Glob(%q) (-want +got):\n%s", "a{b{c,d},e}f", diff)
	}
}

func TestGlob_DuplicatesArePreserved(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"a": ""})

	got := Glob("{a,a}", 0)
	want := []string{"a", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Glob(%q) (-want +got):\n%s", "{a,a}", diff)
	}
}

func TestGlob_RecursiveMatchesZeroLevels(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"x": "",
		"p": testutil.Dir{
			"x": "",
			"q": testutil.Dir{"x": ""},
		},
	})

	testGlob(t, "**/x", 0, []string{"x", "p/x", "p/q/x"})
	testGlob(t, "p/**/x", 0, []string{"p/x", "p/q/x"})
}

func TestGlob_HiddenEntries(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		".hidden": "",
		"visible": "",
		".hd":     testutil.Dir{"x": ""},
		"vd":      testutil.Dir{"x": ""},
	})

	testGlob(t, "*", 0, []string{"visible", "vd"})
	testGlob(t, "*", fnmatch.DotMatch, []string{".hidden", "visible", ".hd", "vd"})

	// Recursive descent also skips hidden directories.
	testGlob(t, "**/x", 0, []string{"vd/x"})
	testGlob(t, "**/x", fnmatch.DotMatch, []string{".hd/x", "vd/x"})
}

func TestGlob_SuffixProbing(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"foo.rb": ""})

	suffixes := []string{"", ".rb"}
	got := CompileSuffixes("foo", 0, suffixes).Glob()
	if diff := cmp.Diff([]string{"foo.rb"}, got); diff != "" {
		t.Errorf("suffix probe without base file (-want +got):\n%s", diff)
	}

	// With both present, both are returned, in suffix-list order.
	testutil.ApplyDir(testutil.Dir{"foo": ""})
	got = CompileSuffixes("foo", 0, suffixes).Glob()
	if diff := cmp.Diff([]string{"foo", "foo.rb"}, got); diff != "" {
		t.Errorf("suffix probe with base file (-want +got):\n%s", diff)
	}
}

func TestGlob_DirectoriesOnly(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"dir":  testutil.Dir{},
		"file": "",
	})

	testGlob(t, "dir/", 0, []string{"dir/"})
	testGlob(t, "file/", 0, nil)
	testGlob(t, "missing/", 0, nil)
}

func TestGlob_AbsolutePattern(t *testing.T) {
	dir := testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"x": "", "y": ""})

	testGlob(t, dir+"/*", 0, []string{dir + "/x", dir + "/y"})
	testGlob(t, dir+"/x", 0, []string{dir + "/x"})
}

func TestGlob_SeparatorRunsArePreserved(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"a": testutil.Dir{"X": ""}})

	testGlob(t, "a//X", 0, []string{"a//X"})
}

func TestGlob_UnmatchedBraceIsLiteral(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"a{b": ""})

	testGlob(t, "a{b", 0, []string{"a{b"})
}

func TestGlob_ListingFailureAbandonsBranchOnly(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"file": "",
		"dir":  testutil.Dir{"x": ""},
	})

	// "file" cannot be listed; the walk must not fail as a whole.
	testGlob(t, "file/*", 0, nil)
	testGlob(t, "file/**/x", 0, nil)
	testGlob(t, "{file,dir}/x", 0, []string{"dir/x"})
}

func TestGlob_RecursionDoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skipf("symlinks not available on Windows test environment")
	}
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"real": testutil.Dir{"x": ""}})
	must.OK(os.Symlink("real", "link"))
	must.OK(os.Symlink(".", "loop"))

	// Non-recursive descent follows symlinked directories...
	testGlob(t, "*/x", 0, []string{"real/x", "link/x"})
	// ...but ** does not, which also guarantees termination in the
	// presence of the "loop" link.
	testGlob(t, "**/x", 0, []string{"real/x"})
}

func TestGlob_LiteralFoldingDoesNotChangeResults(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"a": testutil.Dir{"b": testutil.Dir{"c.txt": ""}},
	})

	folded := Glob("a/b/c.txt", 0)

	// The same pattern compiled without folding: one constant
	// directory step per segment.
	chain := &constantDir{dir: "a", next: &constantDir{sep: "/", dir: "b",
		next: &constantEntry{sep: "/", name: "c.txt", suffixes: []string{""}}}}
	env := &environ{matches: []string{}}
	walk(chain, env, "", "")

	if diff := cmp.Diff(env.matches, folded); diff != "" {
		t.Errorf("folded and unfolded walks disagree (-unfolded +folded):\n%s", diff)
	}
}
