package main

import "github.com/storefront-tools/devflow-cli/cmd"

func main() {
	cmd.Execute()
}
