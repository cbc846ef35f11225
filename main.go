package main

import "state-reconciler/cmd"

func main() {
	cmd.Execute()
}
