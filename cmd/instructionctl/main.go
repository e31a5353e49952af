package main

import "bitbucket.org/Amartha/go-payment-instruction/cmd/instructionctl/cmd"

func main() {
	cmd.Execute()
}
