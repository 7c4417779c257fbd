package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"src.dirglob.org/pkg/must"
)

// TempDir creates a temporary directory for testing that will be
// removed after the test finishes. It panics if the directory cannot
// be created. Symlinks in the path of the directory are resolved,
// so that the path is usable for comparing against paths the code
// under test reports.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "test")
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return must.OK1(filepath.EvalSymlinks(dir))
}

// Chdir changes into a directory, and restores the original working
// directory after the test finishes.
func Chdir(c Cleanuper, dir string) {
	oldWd := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(oldWd) })
}

// InTempDir is equivalent to Chdir(c, TempDir(c)).
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Dir describes the layout of a directory. The keys are entry names;
// a string value describes the content of a regular file, while a
// Dir value describes a subdirectory.
type Dir map[string]any

// ApplyDir creates the given filesystem layout in the current
// directory.
func ApplyDir(dir Dir) {
	applyDir(dir, "")
}

func applyDir(dir Dir, prefix string) {
	for name, file := range dir {
		path := filepath.Join(prefix, name)
		switch file := file.(type) {
		case string:
			must.OK(os.WriteFile(path, []byte(file), 0644))
		case Dir:
			must.OK(os.MkdirAll(path, 0755))
			applyDir(file, path)
		default:
			panic(fmt.Sprintf("file is neither string nor Dir: %v", file))
		}
	}
}
