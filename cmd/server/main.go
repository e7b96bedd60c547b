package main

import "todoapp/cmd/server/cmd"

func main() {
	cmd.Execute()
}
