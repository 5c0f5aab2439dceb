// Command mind-palace runs the galaxy brain portfolio in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/mind-palace/core"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
