package main

import "github.com/mpapenbr/laplog/cmd"

func main() {
	cmd.Execute()
}
