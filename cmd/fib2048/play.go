package main

import (
	"fmt"

	"fib2048/agent"
	"fib2048/arena"
	"fib2048/env"
	"fib2048/metrics"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	playWeightsPath string
	playSeed        uint64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one episode with a loaded weight file and report the score",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playWeightsPath, "weights", "", "path to a weight file (required)")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 1, "environment RNG seed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playWeightsPath == "" {
		return fmt.Errorf("fib2048: --weights is required")
	}

	a := agent.New(agent.WithLoad(playWeightsPath), agent.WithRole("player"))
	e := env.New(env.WithSeed(playSeed))

	result := arena.RunEpisode(a, e, "play", metrics.NewDummyCollector())
	log.Info().Int("moves", result.Moves).Int("score", result.Score).Int("max_tile", result.MaxTile).Msg("fib2048: episode complete")
	return nil
}
