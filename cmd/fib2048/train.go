package main

import (
	"fmt"
	"net/http"

	"fib2048/agent"
	"fib2048/arena"
	"fib2048/env"
	"fib2048/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	trainConfigPath  string
	trainEpisodes    int
	trainAlpha       float32
	trainMetricsAddr string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run self-play training episodes",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainConfigPath, "config", "", "path to a YAML training config")
	trainCmd.Flags().IntVar(&trainEpisodes, "episodes", 0, "override episodes from config")
	trainCmd.Flags().Float32Var(&trainAlpha, "alpha", 0, "override alpha from config")
	trainCmd.Flags().StringVar(&trainMetricsAddr, "metrics-addr", "", "override metrics_addr from config")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := loadTrainConfig(trainConfigPath)
	if err != nil {
		return err
	}
	if trainEpisodes > 0 {
		cfg.Episodes = trainEpisodes
	}
	if trainAlpha != 0 {
		cfg.Alpha = trainAlpha
	}
	if trainMetricsAddr != "" {
		cfg.MetricsAddr = trainMetricsAddr
	}

	var opts []agent.Option
	if cfg.LoadPath != "" {
		opts = append(opts, agent.WithLoad(cfg.LoadPath))
	} else {
		opts = append(opts, agent.WithInit("zero"))
	}
	opts = append(opts, agent.WithAlpha(cfg.Alpha), agent.WithRole("learner"))
	if cfg.SavePath != "" {
		opts = append(opts, agent.WithSave(cfg.SavePath))
	}

	a := agent.New(opts...)
	e := env.New(env.WithSeed(cfg.Seed))
	collector := metrics.NewCollector()

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		exporter := metrics.NewPrometheusExporter(reg)
		collector = metrics.WithExporter(collector, exporter)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("fib2048: metrics server stopped")
			}
		}()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("fib2048: serving prometheus metrics")
	}

	if cfg.StatusAddr != "" {
		status := metrics.NewStatusServer(collector)
		go func() {
			if err := status.ListenAndServe(cfg.StatusAddr); err != nil {
				log.Error().Err(err).Str("addr", cfg.StatusAddr).Msg("fib2048: status server stopped")
			}
		}()
		log.Info().Str("addr", cfg.StatusAddr).Msg("fib2048: serving live status")
	}

	log.Info().Int("episodes", cfg.Episodes).Float32("alpha", cfg.Alpha).Msg("fib2048: starting training run")
	results := arena.Train(a, e, cfg.Episodes, collector)

	if cfg.MetricsDir != "" {
		writer, err := metrics.NewWriter(cfg.MetricsDir)
		if err != nil {
			return fmt.Errorf("fib2048: %w", err)
		}
		episodeMetrics := make([]metrics.EpisodeMetric, len(results))
		for i, r := range results {
			episodeMetrics[i] = metrics.EpisodeMetric{Episode: i + 1, Moves: r.Moves, Score: r.Score, MaxTile: r.MaxTile}
		}
		if err := writer.WriteEpisodes(episodeMetrics); err != nil {
			return fmt.Errorf("fib2048: %w", err)
		}
		log.Info().Str("run_id", writer.RunID().String()).Msg("fib2048: wrote episode metrics")
	}

	totals := collector.Snapshot()
	log.Info().Int("episodes", totals.Episodes).Int("best_score", totals.BestScore).Msg("fib2048: training complete")

	if err := a.Close(); err != nil {
		return fmt.Errorf("fib2048: %w", err)
	}
	return nil
}
