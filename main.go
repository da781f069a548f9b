package main

import "github.com/plucky/plucky/cmd/plucky"

func main() { plucky.Execute() }
