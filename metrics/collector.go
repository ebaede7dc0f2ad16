// Package metrics records per-episode training statistics, writes them to
// CSV for offline analysis, exports live counters to Prometheus, and
// serves a small read-only HTTP status endpoint.
package metrics

import (
	"sync/atomic"
	"time"
)

// EpisodeMetric is one episode's summary: how long it ran, how many moves
// it took, and the final score and maximum tile index reached.
type EpisodeMetric struct {
	Episode   int
	Moves     int
	Score     int
	MaxTile   int
	Duration  time.Duration
	StartTime time.Time
	EndTime   time.Time
}

// Collector accumulates running totals across a training run. Instances
// are safe for concurrent use even though the core training loop is
// single-threaded, since a metrics HTTP server reads them from a separate
// goroutine.
type Collector interface {
	StartEpisode()
	AddMove()
	CompleteEpisode(score, maxTile int) EpisodeMetric
	Snapshot() Totals
}

// Totals is a point-in-time summary across all completed episodes.
type Totals struct {
	Episodes   int
	TotalMoves int
	BestScore  int
	LastScore  int
}

type collector struct {
	episodeStart time.Time
	moves        atomic.Int32

	episodes   atomic.Int32
	totalMoves atomic.Int64
	bestScore  atomic.Int64
	lastScore  atomic.Int64
}

// NewCollector returns a live Collector.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) StartEpisode() {
	c.episodeStart = time.Now()
	c.moves.Store(0)
}

func (c *collector) AddMove() {
	c.moves.Add(1)
}

func (c *collector) CompleteEpisode(score, maxTile int) EpisodeMetric {
	m := EpisodeMetric{
		Episode:   int(c.episodes.Add(1)),
		Moves:     int(c.moves.Load()),
		Score:     score,
		MaxTile:   maxTile,
		StartTime: c.episodeStart,
		EndTime:   time.Now(),
	}
	m.Duration = m.EndTime.Sub(m.StartTime)

	c.totalMoves.Add(int64(m.Moves))
	c.lastScore.Store(int64(score))
	for {
		cur := c.bestScore.Load()
		if int64(score) <= cur {
			break
		}
		if c.bestScore.CompareAndSwap(cur, int64(score)) {
			break
		}
	}

	return m
}

func (c *collector) Snapshot() Totals {
	return Totals{
		Episodes:   int(c.episodes.Load()),
		TotalMoves: int(c.totalMoves.Load()),
		BestScore:  int(c.bestScore.Load()),
		LastScore:  int(c.lastScore.Load()),
	}
}

// dummyCollector discards everything; used when a caller wants the
// Collector interface without the bookkeeping cost.
type dummyCollector struct{}

// NewDummyCollector returns a Collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (*dummyCollector) StartEpisode()                                {}
func (*dummyCollector) AddMove()                                     {}
func (*dummyCollector) CompleteEpisode(int, int) EpisodeMetric       { return EpisodeMetric{} }
func (*dummyCollector) Snapshot() Totals                             { return Totals{} }
