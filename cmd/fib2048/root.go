package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fib2048",
	Short: "Train and evaluate a TD(0) n-tuple learner for Fibonacci-merge 2048",
}

func init() {
	rootCmd.AddCommand(trainCmd, playCmd, benchCmd, evalCmd)
}
