package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/logicka/internal/suite"
	"github.com/DjordjeVuckovic/logicka/pkg/utils"
)

type Report struct {
	Meta    Meta               `json:"meta"`
	Summary Summary            `json:"summary"`
	Cases   []suite.CaseResult `json:"cases"`
	Latency suite.LatencyStats `json:"latency"`
}

type Meta struct {
	RunID       string          `json:"run_id"`
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Duration    time.Duration   `json:"duration"`
	Environment EnvironmentInfo `json:"environment"`
}

type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	PassRate float64 `json:"pass_rate"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// FromResult summarizes a suite run.
func FromResult(res *suite.Result) *Report {
	passed := res.Passed()
	total := len(res.Cases)

	rate := 0.0
	if total > 0 {
		rate = utils.RoundDecimal(float64(passed)/float64(total)*100, 2)
	}

	stats := make([]suite.LatencyStats, len(res.Cases))
	for i, c := range res.Cases {
		stats[i] = c.Latency
	}

	return &Report{
		Meta: Meta{
			RunID:       res.RunID.String(),
			Suite:       res.Suite,
			Timestamp:   res.StartedAt,
			Duration:    res.Duration,
			Environment: NewEnvironmentInfo(),
		},
		Summary: Summary{
			Total:    total,
			Passed:   passed,
			Failed:   total - passed,
			PassRate: rate,
		},
		Cases:   res.Cases,
		Latency: suite.MergeLatencyStats(stats),
	}
}
