// Command ktdocs inspects, validates and scaffolds the Keras Tuner API
// reference tree.
package main

import (
	"os"

	"git.home.luguber.info/inful/ktdocs/cmd/ktdocs/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
