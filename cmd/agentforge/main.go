package main

import "github.com/agentforge-dev/agentforge/internal/cli"

func main() {
	cli.Execute()
}
