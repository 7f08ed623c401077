package main

import "github.com/voltlabs/emcplan-cli/cmd"

func main() {
	cmd.Execute()
}
