package main

import "kvvtracker/cmd"

func main() {
	cmd.Execute()
}
