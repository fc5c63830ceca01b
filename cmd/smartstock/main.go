package main

import "github.com/ogulcanaydogan/smartstock/internal/cli"

func main() {
	cli.Execute()
}
