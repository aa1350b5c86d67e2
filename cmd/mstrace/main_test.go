package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/mstrace/builder"
	"github.com/katalvlaran/mstrace/graphio"
	"github.com/katalvlaran/mstrace/internal/observability"
	"github.com/katalvlaran/mstrace/kruskal"
	"github.com/katalvlaran/mstrace/replay"
)

const triangleJSON = `{"edges":[
  {"source":"A","target":"B","weight":1},
  {"source":"B","target":"C","weight":2},
  {"source":"A","target":"C","weight":3}
]}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// execute runs the CLI in-process at error log level and returns stdout,
// stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	return executeWith(t, nil, append([]string{"--log-level", "error"}, args...)...)
}

// executeWith lets configure adjust the app before the command tree runs.
func executeWith(t *testing.T, configure func(*app), args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd, a := newRootCmd()
	if configure != nil {
		configure(a)
	}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := a.execute(cmd)

	return stdout.String(), stderr.String(), err
}

func TestRunCommand_JSON(t *testing.T) {
	path := writeFile(t, "triangle.json", triangleJSON)

	out, _, err := execute(t, "run", "--verify", path)
	require.NoError(t, err)

	var rep graphio.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Success)
	assert.Equal(t, 3.0, rep.TotalCost)
	assert.Equal(t, []kruskal.Edge{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "B", Target: "C", Weight: 2},
	}, rep.MSTEdges)
	require.Len(t, rep.Steps, 3)
	assert.Equal(t, kruskal.StatusRejected, rep.Steps[2].Status)
	assert.True(t, rep.Statistics.IsSpanning)
	assert.Equal(t, 1, rep.Statistics.EdgesRejected)
}

func TestRunCommand_YAMLWithoutSteps(t *testing.T) {
	path := writeFile(t, "triangle.json", triangleJSON)

	out, _, err := execute(t, "run", "-o", "yaml", "--steps=false", path)
	require.NoError(t, err)
	assert.Contains(t, out, "total_cost: 3")
	assert.NotContains(t, out, "step_number")
}

func TestRunCommand_InvalidGraph(t *testing.T) {
	path := writeFile(t, "bad.json", `{"edges":[{"source":"A","target":"B","weight":-1}]}`)

	_, _, err := execute(t, "run", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphio.ErrBadWeight)
}

func TestRunCommand_BadOutputFormat(t *testing.T) {
	path := writeFile(t, "triangle.json", triangleJSON)

	_, _, err := execute(t, "run", "-o", "xml", path)
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestReplayCommand_StreamsStepsThenComplete(t *testing.T) {
	path := writeFile(t, "triangle.json", triangleJSON)

	out, _, err := execute(t, "replay", "--delay", "0s", path)
	require.NoError(t, err)

	var types []replay.MessageType
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var msg replay.Message
		require.NoError(t, json.Unmarshal(sc.Bytes(), &msg))
		types = append(types, msg.Type)
	}
	assert.Equal(t, []replay.MessageType{
		replay.TypeStep, replay.TypeStep, replay.TypeStep, replay.TypeComplete,
	}, types)
}

func TestReplayCommand_BadSpeed(t *testing.T) {
	path := writeFile(t, "triangle.json", triangleJSON)

	_, _, err := execute(t, "replay", "--delay", "0s", "--speed", "0", path)
	assert.ErrorIs(t, err, replay.ErrBadSpeed)
}

func TestReplayCommand_MissingFileReportsInBand(t *testing.T) {
	out, _, err := execute(t, "replay", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var msg replay.Message
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &msg))
	assert.Equal(t, replay.TypeError, msg.Type)
	assert.NotEmpty(t, msg.Message)
}

func TestValidateCommand(t *testing.T) {
	good := writeFile(t, "triangle.json", triangleJSON)
	out, _, err := execute(t, "validate", good)
	require.NoError(t, err)

	var sum graphio.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.True(t, sum.IsValid)
	assert.Equal(t, []string{"A", "B", "C"}, sum.Nodes)
	assert.Equal(t, 3, sum.EdgesCount)

	bad := writeFile(t, "bad.yaml", "edges:\n  - {source: A, target: '', weight: 1}\n")
	out, _, err = execute(t, "validate", bad)
	require.Error(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.False(t, sum.IsValid)
	assert.Contains(t, sum.Message, "empty node")
}

func TestGenCommand_RoundTripsThroughRun(t *testing.T) {
	out, _, err := execute(t, "gen", "--topology", "complete", "--size", "4", "--seed", "7")
	require.NoError(t, err)

	doc, err := graphio.Decode(strings.NewReader(out), graphio.FormatYAML)
	require.NoError(t, err)
	assert.Len(t, doc.Edges, 6)
	require.NoError(t, graphio.Validate(doc))

	path := writeFile(t, "k4.yaml", out)
	runOut, _, err := execute(t, "run", "--verify", "--steps=false", path)
	require.NoError(t, err)

	var rep graphio.Report
	require.NoError(t, json.Unmarshal([]byte(runOut), &rep))
	assert.Len(t, rep.MSTEdges, 3)
	assert.True(t, rep.Statistics.IsSpanning)
}

func TestGenCommand_UnknownTopology(t *testing.T) {
	_, _, err := execute(t, "gen", "--topology", "moebius")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "known:")
}

func TestGenCommand_InvalidValuesReturnErrors(t *testing.T) {
	cases := map[string][]string{
		"symbol ids beyond Z": {"gen", "--ids", "symbol", "--size", "30", "--topology", "path"},
		"min weight zero":     {"gen", "--min", "0"},
		"max below min":       {"gen", "--min", "5", "--max", "2"},
	}
	for name, args := range cases {
		args := args
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, _, err = execute(t, args...) })
			assert.ErrorIs(t, err, builder.ErrConstructFailed)
		})
	}
}

func TestGenCommand_SymbolIDsWithinRange(t *testing.T) {
	out, _, err := execute(t, "gen", "--ids", "symbol", "--size", "26", "--topology", "path", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"target": "Z"`)
}

// keepSpans ignores Shutdown so spans survive the provider being shut down.
type keepSpans struct {
	*tracetest.InMemoryExporter
}

func (keepSpans) Shutdown(context.Context) error { return nil }

func TestExecute_FlushesSpansOfFailedCommand(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })
	exp := keepSpans{tracetest.NewInMemoryExporter()}
	bad := writeFile(t, "bad.json", `{"edges":[{"source":"A","target":"B","weight":-1}]}`)

	_, _, err := executeWith(t, func(a *app) {
		a.initTracing = func(_ context.Context, cfg *observability.TracingConfig) (*observability.TracerProvider, error) {
			// The batcher only exports on flush, so the span is seen only if
			// the provider was shut down after the failure.
			return observability.Install(sdktrace.WithBatcher(exp), cfg)
		}
	}, "--log-level", "error", "run", bad)
	require.ErrorIs(t, err, graphio.ErrBadWeight)

	spans := exp.GetSpans()
	require.NotEmpty(t, spans)
	var found bool
	for _, s := range spans {
		if s.Name == "command.run" {
			found = true
			assert.Equal(t, codes.Error, s.Status.Code)
		}
	}
	assert.True(t, found, "command.run span must be exported")
}

func TestSetup_LogsConfigWarnings(t *testing.T) {
	cfgPath := writeFile(t, "mstrace.yaml", "replay:\n  speed: -1\n")
	path := writeFile(t, "triangle.json", triangleJSON)

	_, stderr, err := executeWith(t, nil, "--config", cfgPath, "--log-level", "warn", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "replay speed")
	assert.Contains(t, stderr, "component=config")
}

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestReplayCommand_LogsUndeliveredInBandError(t *testing.T) {
	var stderr bytes.Buffer
	cmd, a := newRootCmd()
	cmd.SetOut(failWriter{})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--log-level", "debug", "replay", filepath.Join(t.TempDir(), "nope.json")})

	require.Error(t, a.execute(cmd))
	assert.Contains(t, stderr.String(), "in-band error not delivered")
}
