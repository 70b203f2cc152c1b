package main

import (
	"github.com/bnema/splitframe/internal/cli/cmd"
)

func main() {
	cmd.Execute()
}
