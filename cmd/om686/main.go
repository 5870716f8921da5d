// Package main is the entry point of the om686 CLI. All functionality lives
// in internal/cli, which defines the cobra commands; building and solving
// models is the job of the model, problems, and solve packages.
package main

import (
	"github.com/ai4da/courses.om-686/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
