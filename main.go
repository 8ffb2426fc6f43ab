package main

import "grail-tracker/cmd"

func main() {
	cmd.Execute()
}
