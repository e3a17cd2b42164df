package main

import (
	"os"

	"github.com/arthur-debert/markup/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
