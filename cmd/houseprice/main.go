package main

import (
	"os"

	"houseprice/cmd/houseprice/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
