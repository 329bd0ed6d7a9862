package main

import "ml-platform/internal/cli"

func main() {
	cli.Execute()
}
