package main

import (
	"os"

	"github.com/msto63/veeks/cmd/veeks/cmd"
	mdwerror "github.com/msto63/veeks/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}
