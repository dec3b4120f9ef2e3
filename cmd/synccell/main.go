package main

import (
	"os"

	"github.com/viant/synccell/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
