package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"src.dirglob.org/pkg/buildinfo"
	"src.dirglob.org/pkg/fnmatch"
	"src.dirglob.org/pkg/glob"
	"src.dirglob.org/pkg/prog"
)

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.Version {
		fmt.Fprintln(fds[1], buildinfo.Version)
		return nil
	}
	if len(args) == 0 {
		return prog.BadUsage("need at least one pattern")
	}

	var flags fnmatch.Flags
	if f.DotMatch {
		flags |= fnmatch.DotMatch
	}
	if f.NoEscape {
		flags |= fnmatch.NoEscape
	}
	var suffixes []string
	if f.Suffixes != "" {
		suffixes = strings.Split(f.Suffixes, ",")
	}

	terminator := "\n"
	if f.Print0 {
		terminator = "\x00"
	}

	matched := false
	for _, pattern := range args {
		for _, path := range glob.CompileSuffixes(pattern, flags, suffixes).Glob() {
			matched = true
			fmt.Fprint(fds[1], path, terminator)
		}
	}
	if !matched {
		// Like grep, be silent when piped and explain when talking to
		// a human.
		if isatty.IsTerminal(fds[1].Fd()) {
			fmt.Fprintln(fds[2], "dirglob: no matches")
		}
		return prog.Exit(1)
	}
	return nil
}
