package main

import "github.com/Jackevansevo/taggy/internal/cli"

func main() {
	cli.Execute()
}
