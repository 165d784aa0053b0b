package main

import "raspictl/cmd"

func main() {
	cmd.Execute()
}
