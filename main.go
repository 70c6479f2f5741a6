package main

import (
	"github.com/foomo/showcase/cmd"
)

func main() {
	cmd.Execute()
}
