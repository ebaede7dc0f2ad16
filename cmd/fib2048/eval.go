package main

import (
	"fmt"

	"fib2048/agent"
	"fib2048/arena"
	"fib2048/baseline"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	evalWeightsPath string
	evalMode        string
	evalGames       int
	evalSeed        uint64
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Play a loaded weight file against a heuristic baseline and report the match score",
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringVar(&evalWeightsPath, "weights", "", "path to a weight file (required)")
	evalCmd.Flags().StringVar(&evalMode, "opponent", string(baseline.ModeScore), "baseline heuristic to play against")
	evalCmd.Flags().IntVar(&evalGames, "games", 50, "number of evaluation games")
	evalCmd.Flags().Uint64Var(&evalSeed, "seed", 1, "environment RNG seed, shared between learner and opponent per game")
}

func runEval(cmd *cobra.Command, args []string) error {
	if evalWeightsPath == "" {
		return fmt.Errorf("fib2048: --weights is required")
	}

	opponent, err := baseline.New(baseline.Mode(evalMode), evalSeed)
	if err != nil {
		return fmt.Errorf("fib2048: %w", err)
	}

	a := agent.New(agent.WithLoad(evalWeightsPath), agent.WithRole("player"))
	result := arena.RunEvaluationMatch(a, opponent, evalGames, evalSeed)

	log.Info().Int("games", result.Games).Int("wins_above", result.WinsAbove).Str("opponent", evalMode).Msg("fib2048: evaluation match complete")
	return nil
}
