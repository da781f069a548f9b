// Package plucky provides the command-line interface for the plucky tool.
// It configures subcommands (scan, categories, update, completion), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/plucky/plucky/cmd/plucky"
//	func main() { plucky.Execute() }
package plucky
