// Command recipebox is a single-user recipe catalog.
package main

import (
	"os"

	"github.com/mesh-intelligence/recipebox/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
