package main

import "github.com/vybdev/modfind/cmd"

func main() {
	cmd.Execute()
}
