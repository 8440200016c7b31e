//go:build debug

// Package debug gives the tree builder an escape hatch for dumping its
// open-element stack when something looks wrong, without paying for it
// in a normal build.
package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stderr, "mojo|debug| ", 0)

func Printf(f string, args ...interface{}) {
	logger.Printf(f, args...)
}

func Dump(v ...interface{}) {
	spew.Fdump(os.Stderr, v...)
}
