// Package main is the entry point for the stacks binary.
package main

import "github.com/mesh-intelligence/stacks/internal/cli"

func main() {
	cli.Execute()
}
