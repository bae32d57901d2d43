// Command storefront is the terminal storefront. It searches domain names and
// keeps the cart in a local file between runs.
package main

import (
	"os"

	"github.com/jsamuelsen11/domain-storefront/cmd/storefront/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
