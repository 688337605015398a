/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line entry point for the Chomsky toolkit.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/chomsky-toolkit/cmd/chomsky/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
