package main

import "github.com/goliatone/go-backoffice/cmd/boctl/cmd"

func main() {
	cmd.Execute()
}
