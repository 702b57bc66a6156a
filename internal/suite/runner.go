package suite

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/logicka/internal/sat"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/google/uuid"
)

// Engine is the subset of engine.Engine a suite exercises.
type Engine interface {
	ExtractVariables(ctx context.Context, text string) ([]string, error)
	CalculateTruthTable(ctx context.Context, text string, fixed map[string]bool) ([]truthtable.Row, error)
	Classify(ctx context.Context, text string, fixed map[string]bool) (*sat.Classification, error)
}

const (
	DefaultRuns       = 1
	DefaultWarmupRuns = 0
)

type Config struct {
	Runs       int
	WarmupRuns int
}

func DefaultConfig() Config {
	return Config{Runs: DefaultRuns, WarmupRuns: DefaultWarmupRuns}
}

type CaseResult struct {
	ID         string       `json:"id"`
	Expression string       `json:"expression"`
	Passed     bool         `json:"passed"`
	Failures   []string     `json:"failures,omitempty"`
	Rows       int          `json:"rows"`
	Latency    LatencyStats `json:"latency"`
}

type Result struct {
	RunID     uuid.UUID     `json:"run_id"`
	Suite     string        `json:"suite"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Cases     []CaseResult  `json:"cases"`
}

func (r *Result) Passed() int {
	n := 0
	for _, c := range r.Cases {
		if c.Passed {
			n++
		}
	}
	return n
}

type Runner struct {
	engine Engine
	config Config
}

func NewRunner(engine Engine, cfg Config) *Runner {
	if cfg.Runs < 1 {
		cfg.Runs = DefaultRuns
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = DefaultWarmupRuns
	}
	return &Runner{engine: engine, config: cfg}
}

// Run evaluates every case of s. Case failures are reported in the result;
// only a cancelled context stops the run early.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Result, error) {
	res := &Result{
		RunID:     uuid.New(),
		Suite:     s.Name,
		StartedAt: time.Now(),
		Cases:     make([]CaseResult, 0, len(s.Cases)),
	}

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("suite %q: %w", s.Name, err)
		}

		cr := r.runCase(ctx, &s.Cases[i])
		if !cr.Passed {
			slog.Warn("suite case failed", "suite", s.Name, "case", cr.ID, "failures", cr.Failures)
		}
		res.Cases = append(res.Cases, cr)
	}

	res.Duration = time.Since(res.StartedAt)
	return res, nil
}

func (r *Runner) runCase(ctx context.Context, c *Case) CaseResult {
	cr := CaseResult{ID: c.ID, Expression: c.Expression}

	var (
		rows    []truthtable.Row
		err     error
		samples = make([]time.Duration, 0, r.config.Runs)
	)
	for run := 0; run < r.config.WarmupRuns+r.config.Runs; run++ {
		start := time.Now()
		rows, err = r.engine.CalculateTruthTable(ctx, c.Expression, c.Fixed)
		elapsed := time.Since(start)
		if run >= r.config.WarmupRuns {
			samples = append(samples, elapsed)
		}
	}
	cr.Latency = ComputeLatencyStats(samples)
	cr.Rows = len(rows)

	if c.Expect.WantsError() {
		switch {
		case err == nil:
			cr.fail("expected error containing %q, got %d rows", c.Expect.Error, len(rows))
		case !strings.Contains(err.Error(), c.Expect.Error):
			cr.fail("expected error containing %q, got %q", c.Expect.Error, err.Error())
		}
		cr.Passed = len(cr.Failures) == 0
		return cr
	}
	if err != nil {
		cr.fail("unexpected error: %v", err)
		return cr
	}

	if c.Expect.Results != nil {
		got := make([]bool, len(rows))
		for i, row := range rows {
			got[i] = row.Result
		}
		if !slices.Equal(got, c.Expect.Results) {
			cr.fail("results %v, want %v", got, c.Expect.Results)
		}
	}

	if c.Expect.Variables != nil {
		vars, err := r.engine.ExtractVariables(ctx, c.Expression)
		switch {
		case err != nil:
			cr.fail("extract variables: %v", err)
		case !slices.Equal(vars, c.Expect.Variables):
			cr.fail("variables %v, want %v", vars, c.Expect.Variables)
		}
	}

	if c.Expect.Kind != "" {
		cls, err := r.engine.Classify(ctx, c.Expression, c.Fixed)
		switch {
		case err != nil:
			cr.fail("classify: %v", err)
		case cls.Kind != c.Expect.Kind:
			cr.fail("kind %s, want %s", cls.Kind, c.Expect.Kind)
		}
	}

	cr.Passed = len(cr.Failures) == 0
	return cr
}

func (cr *CaseResult) fail(format string, args ...any) {
	cr.Failures = append(cr.Failures, fmt.Sprintf(format, args...))
}
