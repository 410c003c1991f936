package main

import (
	"os"

	"github.com/comfort-hq/digital-catalogue/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
