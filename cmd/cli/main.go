package main

import "github.com/amirasaad/bankdesk/internal/cli"

func main() {
	cli.Execute()
}
