// Command sed is a standalone entry point for the sed applet.
package main

import (
	"os"

	"github.com/rcarmo/go-busybox/pkg/applets/sed"
	"github.com/rcarmo/go-busybox/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(sed.Run(stdio, os.Args[1:]))
}
