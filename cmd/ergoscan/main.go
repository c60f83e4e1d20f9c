package main

import (
	"os"

	"github.com/oraclekit/ergoscan/cli"
	"github.com/oraclekit/ergoscan/logging"
)

func main() {
	defer logging.Close()

	if err := cli.NewRootCommand().Execute(); err != nil {
		logging.L.Err(err).Msg("")
		os.Exit(1)
	}
}
