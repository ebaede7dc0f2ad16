// Package agent implements the TD(0) after-state learner and greedy
// player: it picks moves by maximizing immediate reward plus after-state
// value, records an episode trajectory, and runs backward TD(0) updates
// when the episode closes.
package agent

import (
	"fmt"
	"strconv"
	"strings"

	"fib2048/board"
	"fib2048/ntuple"
	"fib2048/weights"

	"github.com/rs/zerolog/log"
)

// Action is either a Slide in one of the four directions or Null,
// signifying no legal move was available.
type Action struct {
	Dir  board.Direction
	Null bool
}

// Step is one recorded trajectory entry: the reward earned entering this
// after-state, and the after-state itself.
type Step struct {
	Reward int
	After  board.Board
}

// Option configures an Agent at construction time, mirroring the
// space-separated key=value agent configuration string.
type Option func(a *Agent)

// WithName sets the agent's display name, retained in metadata.
func WithName(name string) Option {
	return func(a *Agent) { a.meta["name"] = name }
}

// WithRole sets the agent's role, retained in metadata.
func WithRole(role string) Option {
	return func(a *Agent) { a.meta["role"] = role }
}

// WithInit allocates the four zeroed weight tables. info is retained in
// metadata but otherwise unused; the core accepts any value here.
func WithInit(info string) Option {
	return func(a *Agent) {
		a.meta["init"] = info
		a.net = ntuple.New()
	}
}

// WithLoad reads the weight tables from path. A failure here is fatal at
// construction, per the core's load-failure-aborts-the-process contract.
func WithLoad(path string) Option {
	return func(a *Agent) {
		a.meta["load"] = path
		tables, err := weights.LoadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("agent: failed to load weights")
		}
		a.net = ntuple.New()
		a.net.LoadTables(tables)
	}
}

// WithSave configures the path weights are written to when the agent is
// closed.
func WithSave(path string) Option {
	return func(a *Agent) {
		a.meta["save"] = path
		a.savePath = path
	}
}

// WithAlpha sets the TD step size. Default 0 disables learning.
func WithAlpha(alpha float32) Option {
	return func(a *Agent) {
		a.meta["alpha"] = strconv.FormatFloat(float64(alpha), 'g', -1, 32)
		a.alpha = alpha
	}
}

// WithSeed is retained in metadata; unused by the learner itself, reserved
// for random baselines sharing the same configuration string.
func WithSeed(seed int64) Option {
	return func(a *Agent) {
		a.meta["seed"] = strconv.FormatInt(seed, 10)
	}
}

// Agent is a TD(0) after-state learner. It owns a weight bank and an
// in-progress episode trajectory.
type Agent struct {
	meta       map[string]string
	net        *ntuple.Network
	alpha      float32
	savePath   string
	trajectory []Step
}

// New constructs an Agent from configuration options. If neither WithInit
// nor WithLoad is supplied, the network is left nil and TakeAction panics
// on first use — mirroring the core's expectation that a learner is always
// configured with one or the other.
func New(opts ...Option) *Agent {
	a := &Agent{meta: make(map[string]string)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Property returns the metadata value for key, or "" if unset.
func (a *Agent) Property(key string) string {
	return a.meta[key]
}

// Notify parses a single "key=value" pair and stores it in metadata.
// Unrecognized keys are retained and ignored, per the core's contract.
func (a *Agent) Notify(pair string) {
	k, v, ok := strings.Cut(pair, "=")
	if !ok {
		return
	}
	a.meta[k] = v
}

// OpenEpisode clears the trajectory, discarding any prior episode's
// recorded steps.
func (a *Agent) OpenEpisode(flag string) {
	a.meta["last_open_flag"] = flag
	a.trajectory = a.trajectory[:0]
}

// TakeAction scans all four slide directions from before, picks the one
// maximizing (value + reward) with ties favoring the later-tried
// direction, appends the resulting step to the trajectory, and returns the
// corresponding action. It returns a Null action without touching the
// trajectory if no direction is legal.
func (a *Agent) TakeAction(before board.Board) Action {
	// found gates the comparison rather than an initial bestValue floor: a
	// weight can go negative after TD updates, so the first legal op must
	// win unconditionally rather than lose to a bestValue==0 zero-init.
	bestOp := -1
	bestReward := -1
	var bestAfter board.Board
	var bestValue float32
	found := false

	for op := 0; op < 4; op++ {
		after := before
		reward := after.Slide(board.Direction(op))
		if reward == -1 {
			continue
		}
		value := a.net.Value(after)
		if !found || value+float32(reward) >= bestValue+float32(bestReward) {
			bestOp = op
			bestReward = reward
			bestAfter = after
			bestValue = value
		}
		found = true
	}

	if !found {
		return Action{Null: true}
	}

	a.trajectory = append(a.trajectory, Step{Reward: bestReward, After: bestAfter})
	return Action{Dir: board.Direction(bestOp)}
}

// CloseEpisode finalizes learning for the episode just completed: it
// anchors the final after-state's value to 0, then walks the trajectory
// backward applying one-step TD targets. It does nothing if the
// trajectory is empty or alpha is 0.
func (a *Agent) CloseEpisode(flag string) {
	a.meta["last_close_flag"] = flag
	n := len(a.trajectory)
	if n == 0 || a.alpha == 0 {
		return
	}

	a.net.Adjust(a.trajectory[n-1].After, 0, a.alpha)
	for i := n - 2; i >= 0; i-- {
		target := float32(a.trajectory[i+1].Reward) + a.net.Value(a.trajectory[i+1].After)
		a.net.Adjust(a.trajectory[i].After, target, a.alpha)
	}
}

// Value exposes the network's value estimate, for callers (evaluation
// tooling, metrics) that need it without going through TakeAction.
func (a *Agent) Value(b board.Board) float32 {
	return a.net.Value(b)
}

// Close persists weights to the configured save path, if any. It is a
// no-op if WithSave was never applied.
func (a *Agent) Close() error {
	if a.savePath == "" {
		return nil
	}
	if err := weights.SaveFile(a.savePath, a.net.Tables()); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	return nil
}

// ParseConfig splits a space-separated "key=value key=value" agent
// configuration string into options. Unrecognized keys become Notify
// calls rather than Options.
func ParseConfig(config string) ([]Option, error) {
	var opts []Option
	for _, field := range strings.Fields(config) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("agent: malformed config field %q", field)
		}
		switch key {
		case "name":
			opts = append(opts, WithName(value))
		case "role":
			opts = append(opts, WithRole(value))
		case "init":
			opts = append(opts, WithInit(value))
		case "load":
			opts = append(opts, WithLoad(value))
		case "save":
			opts = append(opts, WithSave(value))
		case "alpha":
			alpha, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return nil, fmt.Errorf("agent: parse alpha=%q: %w", value, err)
			}
			opts = append(opts, WithAlpha(float32(alpha)))
		case "seed":
			seed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("agent: parse seed=%q: %w", value, err)
			}
			opts = append(opts, WithSeed(seed))
		default:
			kv := field
			opts = append(opts, func(a *Agent) { a.Notify(kv) })
		}
	}
	return opts, nil
}
