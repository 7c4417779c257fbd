package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"src.dirglob.org/pkg/must"
)

// cleanuper implements Cleanuper with explicitly runnable cleanups.
type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}

func TestTempDir_DirIsValid(t *testing.T) {
	dir := TempDir(t)

	stat, err := os.Stat(dir)
	if err != nil {
		t.Errorf("TempDir returns %q which cannot be stated", dir)
	} else if !stat.IsDir() {
		t.Errorf("TempDir returns %q which is not a dir", dir)
	}
}

func TestTempDir_DirHasSymlinksResolved(t *testing.T) {
	dir := TempDir(t)

	resolved := must.OK1(filepath.EvalSymlinks(dir))
	if dir != resolved {
		t.Errorf("TempDir returns %q, but it resolves to %q", dir, resolved)
	}
}

func TestTempDir_CleanupRemovesDirRecursively(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)

	must.OK(os.WriteFile(filepath.Join(dir, "a"), []byte("test"), 0600))

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("dir %q still exists after cleanup", dir)
	}
}

func TestChdir(t *testing.T) {
	dir := TempDir(t)
	original := must.OK1(os.Getwd())

	c := &cleanuper{}
	Chdir(c, dir)

	if after := must.OK1(os.Getwd()); after != dir {
		t.Errorf("pwd is now %q, want %q", after, dir)
	}

	c.runCleanups()
	if restored := must.OK1(os.Getwd()); restored != original {
		t.Errorf("pwd restored to %q, want %q", restored, original)
	}
}

func TestApplyDir_CreatesFilesAndDirectories(t *testing.T) {
	InTempDir(t)

	ApplyDir(Dir{
		"a": "a content",
		"d": Dir{
			"d1": "d1 content",
			"dd": Dir{"dd1": "dd1 content"},
		},
	})

	testFileContent(t, "a", "a content")
	testFileContent(t, "d/d1", "d1 content")
	testFileContent(t, "d/dd/dd1", "dd1 content")
}

func testFileContent(t *testing.T, filename string, wantContent string) {
	t.Helper()
	content, err := os.ReadFile(filename)
	if err != nil {
		t.Errorf("cannot read %v: %v", filename, err)
		return
	}
	if string(content) != wantContent {
		t.Errorf("file %v is %q, want %q", filename, content, wantContent)
	}
}
