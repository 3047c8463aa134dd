package main

import "github.com/Joaofg09/nextlevel-cli/internal/cmd"

func main() {
	cmd.Execute()
}
