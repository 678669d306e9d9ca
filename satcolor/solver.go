package satcolor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/segcolor/external"
)

// DefaultTimeout bounds one solve when the context has no deadline.
const DefaultTimeout = 10 * time.Second

// ErrInvalidProblem reports a problem with K < 1 on a non-empty graph.
var ErrInvalidProblem = errors.New("satcolor: invalid problem")

// Solver is a SAT-backed external.Solver.
type Solver struct {
	// Timeout bounds each solve when the context carries no earlier
	// deadline (0 means DefaultTimeout).
	Timeout time.Duration
	Logger  *slog.Logger
}

var _ external.Solver = (*Solver)(nil)

// New returns a Solver with the given per-solve timeout.
func New(timeout time.Duration, logger *slog.Logger) *Solver {
	return &Solver{Timeout: timeout, Logger: logger}
}

func (s *Solver) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Solve implements external.Solver.
func (s *Solver) Solve(ctx context.Context, p external.Problem) (external.Outcome, error) {
	n := p.Graph.Len()
	if n == 0 {
		return external.Outcome{Colors: []int{}}, nil
	}
	if p.K < 1 {
		return external.Outcome{}, ErrInvalidProblem
	}
	fallback := s.bestSeed(p)
	if fallback.Conflicts == 0 {
		return fallback, nil
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dl, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(dl))
	}
	if timeout <= 0 || ctx.Err() != nil {
		return fallback, nil
	}

	g := gini.New()
	encode(g, p)
	start := time.Now()
	status := g.GoSolve().Try(timeout)
	s.logger().Debug("sat solve",
		slog.String("instance", p.ID),
		slog.Int("vertices", n),
		slog.Int("colors", p.K),
		slog.Int("status", status),
		slog.Duration("elapsed", time.Since(start)))

	switch status {
	case 1:
		colors := decode(g, n, p.K)
		return external.Outcome{Colors: colors, Conflicts: p.Graph.Conflicts(colors)}, nil
	case -1:
		fallback.Infeasible = true
		return fallback, nil
	default:
		return fallback, nil
	}
}

// lit returns the literal "vertex v has colour c".
func lit(v, c, k int) z.Lit {
	return z.Var(v*k + c + 1).Pos()
}

func encode(g *gini.Gini, p external.Problem) {
	k := p.K
	anchor := 0
	for v, adj := range p.Graph.Adj {
		for c := 0; c < k; c++ {
			g.Add(lit(v, c, k))
		}
		g.Add(0)
		if len(adj) > len(p.Graph.Adj[anchor]) {
			anchor = v
		}
	}
	for u, adj := range p.Graph.Adj {
		for _, v := range adj {
			if v <= u {
				continue
			}
			for c := 0; c < k; c++ {
				g.Add(lit(u, c, k).Not())
				g.Add(lit(v, c, k).Not())
				g.Add(0)
			}
		}
	}
	g.Add(lit(anchor, 0, k))
	g.Add(0)
}

func decode(g *gini.Gini, n, k int) []int {
	colors := make([]int, n)
	for v := range colors {
		for c := 0; c < k; c++ {
			if g.Value(lit(v, c, k)) {
				colors[v] = c
				break
			}
		}
	}

	return colors
}

// bestSeed returns the seed with fewer conflicts; without a fitting seed
// every vertex gets colour 0.
func (s *Solver) bestSeed(p external.Problem) external.Outcome {
	var best external.Outcome
	for _, seed := range p.Seeds {
		if !fits(seed, p) {
			continue
		}
		n := p.Graph.Conflicts(seed)
		if best.Colors == nil || n < best.Conflicts {
			best = external.Outcome{Colors: append([]int(nil), seed...), Conflicts: n}
		}
	}
	if best.Colors == nil {
		best.Colors = make([]int, p.Graph.Len())
		best.Conflicts = p.Graph.Conflicts(best.Colors)
	}

	return best
}

func fits(colors []int, p external.Problem) bool {
	if len(colors) != p.Graph.Len() {
		return false
	}
	for _, c := range colors {
		if c < 0 || c >= p.K {
			return false
		}
	}
	return true
}
