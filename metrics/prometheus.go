package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aiplay"

// promCollector keeps the local counts of a collector and mirrors every
// increment into process-wide Prometheus counters, so long benchmark runs can
// be scraped while they progress.
type promCollector struct {
	Collector
	episodes     prometheus.Counter
	fullPlayouts prometheus.Counter
	nodes        prometheus.Counter
	prunes       prometheus.Counter
	scenarios    *prometheus.CounterVec
	evaluations  prometheus.Counter
}

// NewPrometheusCollector registers the aiplay counters with reg and returns a
// collector feeding them. Registering twice on the same registry fails.
func NewPrometheusCollector(reg prometheus.Registerer) (Collector, error) {
	c := &promCollector{
		Collector: NewCollector(),
		episodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mcts",
			Name:      "episodes_total",
			Help:      "MCTS select/expand/rollout/backup iterations.",
		}),
		fullPlayouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mcts",
			Name:      "full_playouts_total",
			Help:      "MCTS rollouts that reached a terminal state.",
		}),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alphabeta",
			Name:      "nodes_total",
			Help:      "States visited by alpha-beta search.",
		}),
		prunes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alphabeta",
			Name:      "prunes_total",
			Help:      "Alpha-beta cutoffs.",
		}),
		scenarios: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "heredity",
			Name:      "trait_subsets_total",
			Help:      "Trait subsets considered, by evidence outcome.",
		}, []string{"outcome"}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "heredity",
			Name:      "joint_evaluations_total",
			Help:      "Joint probabilities computed.",
		}),
	}

	for _, counter := range []prometheus.Collector{
		c.episodes, c.fullPlayouts, c.nodes, c.prunes, c.scenarios, c.evaluations,
	} {
		if err := reg.Register(counter); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return c, nil
}

func (c *promCollector) AddEpisode() {
	c.Collector.AddEpisode()
	c.episodes.Inc()
}

func (c *promCollector) AddFullPlayout() {
	c.Collector.AddFullPlayout()
	c.fullPlayouts.Inc()
}

func (c *promCollector) AddNode() {
	c.Collector.AddNode()
	c.nodes.Inc()
}

func (c *promCollector) AddPrune() {
	c.Collector.AddPrune()
	c.prunes.Inc()
}

func (c *promCollector) AddScenario(accepted bool) {
	c.Collector.AddScenario(accepted)
	if accepted {
		c.scenarios.WithLabelValues("accepted").Inc()
	} else {
		c.scenarios.WithLabelValues("rejected").Inc()
	}
}

func (c *promCollector) AddEvaluation() {
	c.Collector.AddEvaluation()
	c.evaluations.Inc()
}
