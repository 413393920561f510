package main

import "trusted-api/cmd"

func main() {
	cmd.Execute()
}
