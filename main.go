// main executable.
package main

import (
	"os"

	"github.com/pnghide/pnghide/internal/core"
)

func main() {
	_, ok := core.New(os.Args[1:])
	if !ok {
		os.Exit(1)
	}
}
