package main

import "github.com/mkalish/quaver/cmd"

func main() {
	cmd.Execute()
}
