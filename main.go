// ABOUTME: Entry point for blogctl CLI
// ABOUTME: Terminal client for the Blogify blogging platform

package main

import (
	"fmt"
	"os"

	"github.com/blogify/blogctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
