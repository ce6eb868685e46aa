package main

import (
	"os"

	"github.com/livedirtree/treerelay/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cmd.Execute(cmd.RootCmd())
}
