package searcher

import (
	"sync"
	"time"

	"aiplay/game"
	"aiplay/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cSquared   float64
	seed       uint64
	seeded     bool
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

func WithExploration(cSquared float64) Option {
	return func(s *settings) {
		if cSquared > 0 {
			s.cSquared = cSquared
		}
	}
}

// WithSeed makes rollouts reproducible for a fixed number of goroutines and
// episodes.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(s *settings) {
		if c != nil {
			s.metrics = c
		}
	}
}

// MCTS is a tree-parallel Monte Carlo tree search: all goroutines share one
// tree and steer apart through virtual losses.
type MCTS[A comparable] struct {
	settings
	root *node[A]
}

func NewMCTS[A comparable](goroutines int, options ...Option) *MCTS[A] {
	m := &MCTS[A]{settings: settings{ // Default values
		goroutines: max(goroutines, 1),
		cSquared:   CSquared,
		metrics:    metrics.NewDummyCollector(),
	}}
	for _, option := range options {
		option(&m.settings)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from state and returns the statistics of every action
// at the root.
func (m *MCTS[A]) Simulate(state game.State[A]) ([]Choice[A], metrics.Snapshot, error) {
	if state.Terminal() {
		return nil, metrics.Snapshot{}, ErrTerminal
	}
	m.root = newNode[A](nil, state)

	seed := m.seed
	if !m.seeded {
		seed = rand.Uint64()
	}

	m.metrics.Start(m.goroutines)
	if m.episodes > 0 {
		m.iterate(state, seed)
	} else {
		m.countdown(state, seed)
	}
	metric := m.metrics.Complete()

	choices := m.root.choices()
	log.Debug().
		Int("goroutines", m.goroutines).
		Int("episodes", metric.Episodes).
		Dur("duration", metric.Duration).
		Int("actions", len(choices)).
		Msg("search complete")
	return choices, metric, nil
}

func (m *MCTS[A]) iterate(state game.State[A], seed uint64) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(state, rng)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS[A]) countdown(state game.State[A], seed uint64) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(seed + uint64(i)))
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(state, rng)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS[A]) simulate(state game.State[A], rng *rand.Rand) {
	leaf, leafState := selectThenExpand(m.root, state, m.cSquared)
	utility := rollout(leafState, rng, m.metrics)
	backup(leaf, utility)
}

func selectThenExpand[A comparable](root *node[A], state game.State[A], cSquared float64) (*node[A], game.State[A]) {
	parent := root
	child, state, selected := parent.selectOrExpand(state, cSquared)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.selectOrExpand(state, cSquared)
	}
	return child, state
}

// rollout plays uniformly random moves until the game is over and returns
// the final utility.
func rollout[A comparable](state game.State[A], rng *rand.Rand, c metrics.Collector) float64 {
	for !state.Terminal() {
		actions := state.Actions()
		state = play(state, actions[rng.Intn(len(actions))])
	}
	c.AddFullPlayout()
	return state.Utility()
}

func backup[A comparable](leaf *node[A], utility float64) {
	n := leaf
	for n != nil {
		parent := n.backup(utility)
		n = parent
	}
}

// Best returns the most visited action, the first one on ties.
func Best[A comparable](choices []Choice[A]) (A, bool) {
	var best A
	if len(choices) == 0 {
		return best, false
	}
	bestIndex := 0
	for i, c := range choices[1:] {
		if c.Visits > choices[bestIndex].Visits {
			bestIndex = i + 1
		}
	}
	return choices[bestIndex].Action, true
}
