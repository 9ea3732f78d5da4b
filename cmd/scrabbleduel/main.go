package main

import (
	"github.com/mcoot/scrabbleduel/internal/cli"
)

func main() {
	cli.Execute()
}
