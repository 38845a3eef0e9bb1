package main

import (
	"github.com/solderworks/rpt2paste/cmd/rpt2paste/cmd"
)

func main() {
	cmd.Execute()
}
