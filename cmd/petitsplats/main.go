package main

import (
	"github.com/sferrer-dev/petitsplats/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}
