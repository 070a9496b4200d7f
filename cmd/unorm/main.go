package main

import (
	"github.com/lbryio/unorm/cmd/unorm/cmd"
)

func main() {
	cmd.Execute()
}
