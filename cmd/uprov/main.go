package main

import (
	"os"

	"github.com/mholloway/uprov/internal/cli"
	"github.com/mholloway/uprov/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error("%v", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}
