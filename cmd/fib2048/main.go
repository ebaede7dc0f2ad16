package main

import (
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	setupLogger()

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("fib2048: command failed")
	}
}

// setupLogger installs a console writer when stdout is a terminal and
// falls back to plain JSON otherwise, so piped/CI output stays
// machine-readable while interactive runs stay readable.
func setupLogger() {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStdout()})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
