// Package fsutil provides the filesystem queries that globbing is
// built on.
package fsutil

import "os"

// Exists returns whether path refers to an existing filesystem entry.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir returns whether path refers to an existing directory,
// following symlinks.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsDirNoFollow is like IsDir, except that a symlink to a directory
// does not count as a directory.
func IsDirNoFollow(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.IsDir()
}

// ListNames returns the names of the entries of the directory, in the
// order the operating system reports them. An empty dir is treated as
// ".". Callers are expected to recover locally from the returned
// error; a directory that cannot be listed simply contributes no
// names.
func ListNames(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		return nil, err
	}
	return names, nil
}
