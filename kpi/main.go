package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/blackroad/startupmetrics/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env file is fine, the defaults cover everything.
	_ = godotenv.Load()
	setupLogging()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// setupLogging configures the global logger. Reports go to stdout and logs
// to stderr, so piping a report into jq or a file stays clean.
func setupLogging() {
	level := zerolog.WarnLevel
	if s := os.Getenv("KPI_LOG_LEVEL"); s != "" {
		if l, err := zerolog.ParseLevel(s); err == nil {
			level = l
		}
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("KPI_LOG_FORMAT") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
