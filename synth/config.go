package synth

import (
	"math/rand/v2"
	"strconv"

	"github.com/maxedgeorient/meo/core"
)

// Constructor populates g with one topology's vertices and edges, using cfg
// for vertex naming, weighting, and edge-direction classification.
type Constructor func(g *core.Graph, cfg Config) error

// Config holds the deterministic defaults and caller overrides every
// Constructor draws on. It is passed by value so constructors cannot
// mutate each other's view of it.
type Config struct {
	idFn           func(int) string
	rng            *rand.Rand
	weightFn       func(*rand.Rand) float64
	nodeWeightFn   func(*rand.Rand) float64
	targetWeightFn func(*rand.Rand) float64
	directedFrac   float64
	leftPrefix     string
	rightPrefix    string
	sources        []int
	targets        []int
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

func newConfig(opts ...Option) Config {
	cfg := Config{
		idFn:           decimalID,
		rng:            rand.New(rand.NewPCG(1, 1)),
		weightFn:       func(*rand.Rand) float64 { return 1.0 },
		nodeWeightFn:   func(*rand.Rand) float64 { return 1.0 },
		targetWeightFn: func(*rand.Rand) float64 { return 1.0 },
		directedFrac:   0.0,
		leftPrefix:     defaultLeftPrefix,
		rightPrefix:    defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// decimalID renders an index as a base-10 string: "0", "1", "2", ...
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// isDirected decides, via cfg.rng, whether the next edge should be
// directed. directedFrac<=0 always yields undirected; directedFrac>=1
// always yields directed.
func (cfg Config) isDirected() bool {
	switch {
	case cfg.directedFrac <= 0:
		return false
	case cfg.directedFrac >= 1:
		return true
	default:
		return cfg.rng.Float64() < cfg.directedFrac
	}
}
