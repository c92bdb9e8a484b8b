package main

import "github.com/notargets/ctu2d/cmd"

func main() {
	cmd.Execute()
}
