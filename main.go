package main

import "github.com/dincharya-ai/cli/internal/commands"

func main() {
	commands.Execute()
}
