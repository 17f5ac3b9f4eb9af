package main

import "github.com/whxitte/Docker-Gen/cmd"

func main() {
	cmd.Execute()
}
