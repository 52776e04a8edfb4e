package main

import "gem5dev/internal/cli"

func main() {
	cli.Execute()
}
