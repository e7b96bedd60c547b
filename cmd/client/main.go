package main

import "todoapp/cmd/client/cmd"

func main() {
	cmd.Execute()
}
