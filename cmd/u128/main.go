package main

import "github.com/shabbyrobe/go-uint128/internal/cli"

func main() {
	cli.Execute()
}
