package main

import (
	"os"

	"github.com/apimgr/courseplanner/src/client/cmd"
)

func main() {
	// cobra reports the error itself
	if err := cmd.Execute(InitCLI); err != nil {
		os.Exit(1)
	}
}
