package main

import (
	"github.com/torvand/proplog/src/cli"
)

func main() {
	cli.Execute()
}
