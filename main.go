package main

import "github.com/mkadlec/pagegrid/cmd"

func main() {
	cmd.Execute()
}
