package main

import "github.com/matthewfesta/Wordle-Clone/internal/cli"

func main() {
	cli.Execute()
}
