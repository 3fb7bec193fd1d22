package main

import (
	"github.com/reuben-baek/kitchenpos/cli"
	"os"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
