package main

import "github.com/nextcore/rnlink/cmd/rnlink/cmd"

func main() {
	cmd.Execute()
}
