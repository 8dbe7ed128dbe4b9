package main

import (
	"os"

	"github.com/dshills/procon/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
