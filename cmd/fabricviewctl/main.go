package main

import "fabricview/cmd/fabricviewctl/cmd"

func main() {
	cmd.Execute()
}
