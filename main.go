package main

import "github.com/kozaktomas/card-press/cmd"

func main() {
	cmd.Execute()
}
