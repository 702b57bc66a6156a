package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/logicka/internal/suite"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []truthtable.Row {
	cell := func(name string, v bool) truthtable.Variable { return truthtable.Variable{Name: name, Value: v} }
	return []truthtable.Row{
		{Result: false, Variables: []truthtable.Variable{cell("A", false), cell("B", false)}},
		{Result: false, Variables: []truthtable.Variable{cell("A", false), cell("B", true)}},
		{Result: false, Variables: []truthtable.Variable{cell("A", true), cell("B", false)}},
		{Result: true, Variables: []truthtable.Variable{cell("A", true), cell("B", true)}},
	}
}

func TestWriteTruthTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTruthTable(&buf, []string{"A", "B"}, sampleRows(), false))

	expected := strings.Join([]string{
		"A    B    Result",
		"---  ---  ---",
		"0    0    0",
		"0    1    0",
		"1    0    0",
		"1    1    1",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestWriteTruthTable_Highlight(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTruthTable(&buf, []string{"A", "B"}, sampleRows(), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[5], ansiGreen))
	assert.True(t, strings.HasPrefix(lines[2], ansiDefault))
	assert.True(t, strings.HasSuffix(lines[5], ansiReset))
}

func sampleResult() *suite.Result {
	lat := suite.ComputeLatencyStats([]time.Duration{time.Millisecond, 3 * time.Millisecond})
	return &suite.Result{
		RunID:     uuid.MustParse("7f1d4c8e-2b1a-4a57-9d7e-1f2a3b4c5d6e"),
		Suite:     "basics",
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:  5 * time.Millisecond,
		Cases: []suite.CaseResult{
			{ID: "and", Expression: "A && B", Passed: true, Rows: 4, Latency: lat},
			{ID: "not", Expression: "!A", Passed: true, Rows: 2, Latency: lat},
			{ID: "bad", Expression: "A ->", Passed: false, Failures: []string{"unexpected error: boom"}, Latency: lat},
		},
	}
}

func TestFromResult(t *testing.T) {
	r := FromResult(sampleResult())

	assert.Equal(t, "basics", r.Meta.Suite)
	assert.Equal(t, "7f1d4c8e-2b1a-4a57-9d7e-1f2a3b4c5d6e", r.Meta.RunID)
	assert.Equal(t, Summary{Total: 3, Passed: 2, Failed: 1, PassRate: 66.67}, r.Summary)
	assert.Equal(t, 6, r.Latency.SampleCount)
	assert.NotEmpty(t, r.Meta.Environment.GoVersion)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(FromResult(sampleResult()), &buf))

	out := buf.String()
	assert.Contains(t, out, "=== Suite: basics ===")
	assert.Contains(t, out, "2/3 passed (66.67%)")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "unexpected error: boom")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(FromResult(sampleResult()), &buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "cases")
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "-", fmtDuration(0))
	assert.Equal(t, "1.5µs", fmtDuration(1500*time.Nanosecond))
	assert.Equal(t, "2.50ms", fmtDuration(2500*time.Microsecond))
	assert.Equal(t, "1.20s", fmtDuration(1200*time.Millisecond))
}
