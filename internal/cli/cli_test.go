package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trapseq/internal/cli"
)

func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = cli.Execute(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func runJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	code, out, errOut := run(t, "", append(args, "-o", "json", "-n", "60")...)
	require.Equal(t, 0, code, errOut)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

type interval struct{ Lo, Hi int }

func TestSymbols_Text(t *testing.T) {
	code, out, errOut := run(t, "", "symbols", "7")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "A0 A5 B3 B4 B0 A0 B1\n0 5 3 4 0 0 1\n", out)
}

func TestSubword(t *testing.T) {
	var res struct {
		Length  int `json:"length"`
		LastNew int `json:"last_new"`
		Words   int `json:"words"`
	}
	runJSON(t, &res, "subword", "3")
	assert.Equal(t, 3, res.Length)
	assert.Equal(t, 4115, res.LastNew)
	assert.Positive(t, res.Words)
}

func TestMatch(t *testing.T) {
	var res struct {
		Earliest    int      `json:"earliest"`
		Word        []string `json:"word"`
		Positioning string   `json:"positioning"`
	}
	// Position 5 repeats the A0 at position 0.
	runJSON(t, &res, "match", "5", "1")
	assert.Equal(t, 0, res.Earliest)
	assert.Equal(t, []string{"A0"}, res.Word)
	assert.Equal(t, "0", res.Positioning)
}

func TestIntervals(t *testing.T) {
	var res struct {
		Kind      string     `json:"kind"`
		LastNew   int        `json:"last_new"`
		Covered   int        `json:"covered"`
		Intervals []interval `json:"intervals"`
	}
	runJSON(t, &res, "intervals", "3")
	assert.Equal(t, "positioning", res.Kind)
	assert.Equal(t, 1502, res.LastNew)
	assert.Equal(t, []interval{
		{0, 18}, {19, 31}, {32, 35}, {44, 47}, {51, 54}, {57, 64},
		{81, 84}, {97, 100}, {103, 106}, {213, 217}, {335, 338}, {1502, 1505},
	}, res.Intervals)
	assert.Equal(t, 65, res.Covered)

	runJSON(t, &res, "intervals", "3", "--kind", "subword")
	assert.Equal(t, 4115, res.LastNew)
	require.Len(t, res.Intervals, 43)
	assert.Equal(t, interval{0, 37}, res.Intervals[0])
	assert.Equal(t, interval{4115, 4118}, res.Intervals[42])
}

func TestCollinear(t *testing.T) {
	type result struct {
		Count int `json:"count"`
		Line  *struct {
			PivotIndex int `json:"pivot_index"`
		} `json:"line"`
	}
	for _, scalar := range []string{"quadratic", "fraction"} {
		var naive, sweep result
		runJSON(t, &naive, "collinear", "0", "6", "6", "--algo", "naive", "--scalar", scalar)
		runJSON(t, &sweep, "collinear", "0", "6", "6", "--scalar", scalar)
		assert.Equal(t, 5, naive.Count, scalar)
		assert.Nil(t, naive.Line)
		assert.Equal(t, 5, sweep.Count, scalar)
		require.NotNil(t, sweep.Line)
		assert.GreaterOrEqual(t, sweep.Line.PivotIndex, 0)
	}

	var best result
	runJSON(t, &best, "collinear", "2", "--algo", "max")
	assert.Equal(t, 3, best.Count)
}

func TestCollinear_BadArgs(t *testing.T) {
	for _, args := range [][]string{
		{"collinear", "0", "6"},
		{"collinear", "0", "6", "6", "--algo", "max"},
		{"collinear", "0", "6", "6", "--algo", "fast"},
		{"collinear", "0", "x", "6"},
	} {
		code, _, errOut := run(t, "", args...)
		assert.Equal(t, 1, code, args)
		assert.Contains(t, errOut, "error:", args)
	}
}

func TestDistance_YAML(t *testing.T) {
	code, out, errOut := run(t, "", "distance", "4", "4", "-o", "yaml")
	require.Equal(t, 0, code, errOut)
	var res map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "16", res["max_sq"])
	assert.Equal(t, "0", res["min_sq"])
}

func TestBounds(t *testing.T) {
	var res struct {
		Checks []struct {
			Kind  string `json:"kind"`
			Holds bool   `json:"holds"`
		} `json:"checks"`
		Extremes []struct {
			Gap   int    `json:"gap"`
			MinSq string `json:"min_sq"`
		} `json:"extremes"`
	}
	runJSON(t, &res, "bounds", "0", "59", "22", "27", "--scalar", "fraction",
		"--max", "5", "--min", "1/100", "--ratio", "1000")
	require.Len(t, res.Checks, 3)
	for _, c := range res.Checks {
		assert.True(t, c.Holds, c.Kind)
	}

	res.Checks = nil
	runJSON(t, &res, "bounds", "0", "59", "22", "27", "--scalar", "fraction")
	require.Len(t, res.Extremes, 6)
	assert.Equal(t, 22, res.Extremes[0].Gap)
	assert.Equal(t, "12", res.Extremes[0].MinSq)
	assert.Nil(t, res.Checks)
}

func TestBounds_Errors(t *testing.T) {
	// The ring family cannot hold 4.81 exactly.
	code, _, errOut := run(t, "", "bounds", "0", "59", "22", "27", "--max", "4.81")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "inexact division")

	code, _, errOut = run(t, "", "bounds", "0", "5", "3", "2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "error:")
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.png")
	code, _, errOut := run(t, "", "render", path, "-n", "49", "--width", "64", "--height", "48", "--margin", "2")
	require.Equal(t, 0, code, errOut)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestVersion(t *testing.T) {
	var res struct {
		Version string `json:"version"`
	}
	runJSON(t, &res, "version")
	assert.Equal(t, cli.Version, res.Version)
}

func TestConfigErrors(t *testing.T) {
	code, _, errOut := run(t, "", "subword", "2", "--scalar", "real")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "scalar")

	code, _, _ = run(t, "", "subword", "2", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trapseq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nlength: 7\n"), 0o600))

	code, out, errOut := run(t, "", "subword", "1", "--config", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, `"last_new": 214`)
}

func TestREPL(t *testing.T) {
	in := "subword 1\n\nbogus\nsymbols 3 -o text\nrepl\nquit\nsubword 2\n"
	code, out, errOut := run(t, in, "repl", "-o", "json", "-n", "60")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, `"last_new": 214`)
	assert.Contains(t, out, "A0 A5 B3\n")
	assert.NotContains(t, out, `"last_new": 587`, "lines after quit are not run")
	assert.Contains(t, errOut, `unknown command "bogus"`)
	assert.Contains(t, errOut, `unknown command "repl"`)
}

func TestREPL_EOF(t *testing.T) {
	code, out, _ := run(t, "version\n", "repl")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "trapseq dev")
	assert.True(t, strings.HasSuffix(out, "trapseq> \n"))
}
