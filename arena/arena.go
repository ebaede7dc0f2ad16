// Package arena drives episodes sequentially: opening/closing an agent's
// episode around an alternating loop of player and environment moves,
// running evaluation matches against baseline players, and sweeping
// training configurations one at a time. Training happens strictly
// sequentially here, by design — no goroutine fan-out across episodes.
package arena

import (
	"fmt"

	"fib2048/agent"
	"fib2048/baseline"
	"fib2048/board"
	"fib2048/env"
	"fib2048/metrics"

	"github.com/rs/zerolog/log"
)

// RunResult summarizes one completed episode.
type RunResult struct {
	Moves   int
	Score   int
	MaxTile int
}

// RunEpisode plays one episode of the learner against a random tile
// environment: open_episode, then alternate environment placement and
// TakeAction (the environment moves first each turn, placing a tile onto
// the board before the player sees it) until either side has no legal
// move, close_episode.
func RunEpisode(a *agent.Agent, e *env.Environment, flag string, collector metrics.Collector) RunResult {
	collector.StartEpisode()
	a.OpenEpisode(flag)

	var b board.Board
	score := 0
	moves := 0

	for {
		placed, ok := e.TakeAction(b)
		if !ok {
			break
		}
		b = placed

		action := a.TakeAction(b)
		if action.Null {
			break
		}

		after := b
		reward := after.Slide(action.Dir)
		if reward == -1 {
			log.Warn().Msg("arena: agent emitted an illegal action; treating as episode end")
			break
		}
		score += reward
		moves++
		collector.AddMove()
		b = after
	}

	a.CloseEpisode(flag)

	maxTile := 0
	for i := 0; i < board.NumCells; i++ {
		if c := int(b.At(i)); c > maxTile {
			maxTile = c
		}
	}

	collector.CompleteEpisode(score, maxTile)
	return RunResult{Moves: moves, Score: score, MaxTile: maxTile}
}

// Train runs episodes sequentially, learning after each one.
func Train(a *agent.Agent, e *env.Environment, episodes int, collector metrics.Collector) []RunResult {
	results := make([]RunResult, episodes)
	for i := 0; i < episodes; i++ {
		results[i] = RunEpisode(a, e, fmt.Sprintf("train-%d", i), collector)
	}
	return results
}

// MatchResult tallies how a learner fared against a baseline opponent over
// a fixed number of evaluation games, where the opponent plays its own
// episode in place of the learner (both face random tile draws via
// env.Environment between their own moves, matching the original
// dummy-player comparison harness).
type MatchResult struct {
	Games     int
	WinsAbove int // episodes whose score exceeded the opponent's
	Scores    []int
}

// RunEvaluationMatch plays the learner (with alpha effectively frozen by
// the caller, e.g. via a zero-alpha agent) for games episodes and compares
// each episode's score against the opponent's score on an independent
// episode with the same environment seed, sequentially. The same opponent
// Player (and its RNG state) is reused across all games.
func RunEvaluationMatch(a *agent.Agent, opponent *baseline.Player, games int, seed uint64) MatchResult {
	result := MatchResult{Games: games, Scores: make([]int, games)}

	for i := 0; i < games; i++ {
		learnerEnv := env.New(env.WithSeed(seed + uint64(i)))
		learnerResult := RunEpisode(a, learnerEnv, fmt.Sprintf("eval-learner-%d", i), metrics.NewDummyCollector())
		result.Scores[i] = learnerResult.Score

		opponentScore := runBaselineEpisode(opponent, env.New(env.WithSeed(seed+uint64(i))))
		if learnerResult.Score > opponentScore {
			result.WinsAbove++
		}
	}

	return result
}

func runBaselineEpisode(p *baseline.Player, e *env.Environment) int {
	var b board.Board
	score := 0

	for {
		placed, ok := e.TakeAction(b)
		if !ok {
			break
		}
		b = placed

		action := p.TakeAction(b)
		if action.Null {
			break
		}
		after := b
		reward := after.Slide(action.Dir)
		if reward == -1 {
			break
		}
		score += reward
		b = after
	}

	return score
}

// AlphaSweepResult is one point in a sequential alpha sweep.
type AlphaSweepResult struct {
	Alpha     float32
	AvgScore  float64
	BestScore int
}

// RunAlphaSweep trains an independent agent from scratch for each alpha
// value in sequence and reports its average and best score, never running
// two sweep points concurrently.
func RunAlphaSweep(alphas []float32, episodesPerAlpha int, seed uint64) []AlphaSweepResult {
	results := make([]AlphaSweepResult, len(alphas))

	for i, alpha := range alphas {
		log.Info().Float32("alpha", alpha).Msg("arena: starting alpha sweep point")

		a := agent.New(agent.WithInit("sweep"), agent.WithAlpha(alpha))
		e := env.New(env.WithSeed(seed))
		collector := metrics.NewCollector()

		runs := Train(a, e, episodesPerAlpha, collector)

		total := 0
		best := 0
		for _, r := range runs {
			total += r.Score
			if r.Score > best {
				best = r.Score
			}
		}

		results[i] = AlphaSweepResult{
			Alpha:     alpha,
			AvgScore:  float64(total) / float64(len(runs)),
			BestScore: best,
		}
	}

	return results
}
