package main

import (
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/they4kman/tinysweep/cmd"
)

func main() {
	cmd.Execute()
}
