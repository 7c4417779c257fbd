// Dirglob prints the filesystem paths matching shell-style glob
// patterns, one per line, in the order they are discovered.
package main

import (
	"os"

	"src.dirglob.org/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, program{}))
}
