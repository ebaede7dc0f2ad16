package main

import (
	"fib2048/arena"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	benchEpisodes int
	benchSeed     uint64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Sweep alpha values sequentially and report average/best score per value",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchEpisodes, "episodes", 100, "episodes trained per alpha value")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 1, "environment RNG seed, shared across alpha values")
}

func runBench(cmd *cobra.Command, args []string) error {
	alphas := []float32{0.001, 0.01, 0.05, 0.1, 0.5}

	log.Info().Int("episodes_per_alpha", benchEpisodes).Msg("fib2048: starting alpha sweep")
	results := arena.RunAlphaSweep(alphas, benchEpisodes, benchSeed)

	for _, r := range results {
		log.Info().Float32("alpha", r.Alpha).Float64("avg_score", r.AvgScore).Int("best_score", r.BestScore).Msg("fib2048: sweep point complete")
	}
	return nil
}
