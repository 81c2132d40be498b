// Package build provides deterministic network generators: canonical
// topologies (path, grid, star, complete) and seeded random networks, all
// returned as ready-to-query core graphs.
//
// Determinism contract: the same constructor, arguments and seed always
// produce an identical graph. Generators validate parameters early and
// return sentinel errors; they never panic.
package build

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vkarasov/wayfind/astar"
	"github.com/vkarasov/wayfind/core"
)

var (
	// ErrTooFewNodes is returned when a topology needs more nodes than
	// requested.
	ErrTooFewNodes = errors.New("build: too few nodes for topology")

	// ErrInvalidProbability is returned when an edge probability falls
	// outside [0, 1].
	ErrInvalidProbability = errors.New("build: edge probability outside [0,1]")

	// ErrInvalidWeightRange is returned when the weight range is empty or
	// contains negative values.
	ErrInvalidWeightRange = errors.New("build: invalid weight range")
)

// Options configures generator randomness and edge weights.
type Options struct {
	// Seed drives all stochastic choices. Equal seeds give equal graphs.
	Seed int64

	// MinWeight and MaxWeight bound generated edge weights. Both default
	// to 1, producing unit-weight networks.
	MinWeight, MaxWeight float64

	// Directed selects graph directedness. Defaults to undirected.
	Directed bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: seed 1, unit weights,
// undirected.
func DefaultOptions() Options {
	return Options{Seed: 1, MinWeight: 1, MaxWeight: 1}
}

// WithSeed freezes the random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWeightRange draws edge weights uniformly from [min, max].
func WithWeightRange(min, max float64) Option {
	return func(o *Options) { o.MinWeight, o.MaxWeight = min, max }
}

// WithDirected selects directed edges.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

func resolve(opts []Option) (Options, *rand.Rand, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MinWeight < 0 || o.MaxWeight < o.MinWeight {
		return o, nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidWeightRange, o.MinWeight, o.MaxWeight)
	}

	return o, rand.New(rand.NewSource(o.Seed)), nil
}

func (o Options) weight(r *rand.Rand) float64 {
	if o.MaxWeight == o.MinWeight {
		return o.MinWeight
	}

	return o.MinWeight + r.Float64()*(o.MaxWeight-o.MinWeight)
}

func newGraph(o Options) *core.Graph {
	return core.NewGraph(core.WithDirected(o.Directed))
}

// Path creates a chain 0-1-...-(n-1).
func Path(n int64, opts ...Option) (*core.Graph, error) {
	o, r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: path needs at least 1, got %d", ErrTooFewNodes, n)
	}

	g := newGraph(o)
	for id := int64(0); id < n; id++ {
		if err := g.AddNode(id, 0, float64(id)); err != nil {
			return nil, err
		}
	}
	for id := int64(1); id < n; id++ {
		if err := g.AddEdge(id-1, id, o.weight(r)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid creates a rows×cols lattice with 4-neighborhood. Node r*cols+c sits
// at planar coordinates (Lat=r, Lon=c), so Manhattan estimates are
// admissible on unit weights.
func Grid(rows, cols int64, opts ...Option) (*core.Graph, error) {
	o, r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: grid needs positive dimensions, got %dx%d", ErrTooFewNodes, rows, cols)
	}

	g := newGraph(o)
	for row := int64(0); row < rows; row++ {
		for col := int64(0); col < cols; col++ {
			if err := g.AddNode(row*cols+col, float64(row), float64(col)); err != nil {
				return nil, err
			}
		}
	}
	for row := int64(0); row < rows; row++ {
		for col := int64(0); col < cols; col++ {
			id := row*cols + col
			if col+1 < cols {
				if err := g.AddEdge(id, id+1, o.weight(r)); err != nil {
					return nil, err
				}
			}
			if row+1 < rows {
				if err := g.AddEdge(id, id+cols, o.weight(r)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Star creates a hub (node 0) connected to n-1 spokes.
func Star(n int64, opts ...Option) (*core.Graph, error) {
	o, r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: star needs at least 2, got %d", ErrTooFewNodes, n)
	}

	g := newGraph(o)
	for id := int64(0); id < n; id++ {
		if err := g.AddNode(id, 0, float64(id)); err != nil {
			return nil, err
		}
	}
	for id := int64(1); id < n; id++ {
		if err := g.AddEdge(0, id, o.weight(r)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete creates a clique over n nodes.
func Complete(n int64, opts ...Option) (*core.Graph, error) {
	o, r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: complete graph needs at least 1, got %d", ErrTooFewNodes, n)
	}

	g := newGraph(o)
	for id := int64(0); id < n; id++ {
		if err := g.AddNode(id, 0, float64(id)); err != nil {
			return nil, err
		}
	}
	for a := int64(0); a < n; a++ {
		for b := a + 1; b < n; b++ {
			if err := g.AddEdge(a, b, o.weight(r)); err != nil {
				return nil, err
			}
			if o.Directed {
				if err := g.AddEdge(b, a, o.weight(r)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// RandomSparse creates a connected random network: a spanning chain plus
// each remaining pair joined independently with probability p.
func RandomSparse(n int64, p float64, opts ...Option) (*core.Graph, error) {
	o, r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: sparse graph needs at least 1, got %d", ErrTooFewNodes, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidProbability, p)
	}

	g := newGraph(o)
	for id := int64(0); id < n; id++ {
		if err := g.AddNode(id, 0, float64(id)); err != nil {
			return nil, err
		}
	}
	for id := int64(1); id < n; id++ {
		if err := g.AddEdge(id-1, id, o.weight(r)); err != nil {
			return nil, err
		}
	}
	for a := int64(0); a < n; a++ {
		for b := a + 2; b < n; b++ {
			if r.Float64() >= p {
				continue
			}
			if err := g.AddEdge(a, b, o.weight(r)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// RandomGeo scatters n nodes uniformly over a degree box and connects each
// node to its chain successor plus random shortcuts, with edge weights set
// to the great-circle distance scaled by detour. It approximates a road
// network for goal-directed search demos.
func RandomGeo(n int64, latMin, latMax, lonMin, lonMax, detour float64, opts ...Option) (*core.Graph, error) {
	o, r, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: geo network needs at least 2, got %d", ErrTooFewNodes, n)
	}
	if detour < 1 {
		return nil, fmt.Errorf("%w: detour factor %g below 1", ErrInvalidWeightRange, detour)
	}

	g := newGraph(o)
	for id := int64(0); id < n; id++ {
		lat := latMin + r.Float64()*(latMax-latMin)
		lon := lonMin + r.Float64()*(lonMax-lonMin)
		if err := g.AddNode(id, lat, lon); err != nil {
			return nil, err
		}
	}

	link := func(a, b int64) error {
		if a == b || g.HasEdge(a, b) {
			return nil
		}
		na, _ := g.Node(a)
		nb, _ := g.Node(b)

		return g.AddEdge(a, b, detour*astar.Haversine(na, nb))
	}

	for id := int64(1); id < n; id++ {
		if err := link(id-1, id); err != nil {
			return nil, err
		}
	}
	for k := int64(0); k < n; k++ {
		if err := link(r.Int63n(n), r.Int63n(n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
