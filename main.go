package main

import "github.com/wharf-dev/wharf/internal/cli"

func main() {
	cli.Execute()
}
