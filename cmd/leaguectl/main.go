package main

import (
	"os"

	"github.com/riskibarqy/jam-league/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
