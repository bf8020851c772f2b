package main

import (
	"os"

	"github.com/tracelog/analyzer/cli"
)

func main() {
	os.Exit(cli.Execute())
}
