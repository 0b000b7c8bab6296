package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabopt/journal"
	"github.com/katalvlaran/tabopt/model"
)

// run executes the CLI in-process and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestExampleThenSolve(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "max.xlsx")

	out, err := run(t, "example", "maximize", "-o", book)
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+book)

	out, err = run(t, "solve", "maximize", "-f", book)
	require.NoError(t, err)
	require.Contains(t, out, "OPTIMAL")
	require.Contains(t, out, "1200")
	require.Regexp(t, `X2\s+40`, out)
}

func TestSolveJSON_WithJournalAndExport(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "transport.xlsx")
	log := filepath.Join(dir, "solves.csv")
	export := filepath.Join(dir, "result.xlsx")
	prom := filepath.Join(dir, "metrics.prom")

	_, err := run(t, "example", "transport", "-o", book)
	require.NoError(t, err)

	out, err := run(t, "--journal", log, "--metrics-file", prom,
		"solve", "transport", "-f", book, "--format", "json", "--out", export)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "OPTIMAL", got["status"])
	require.Equal(t, "transport", got["kind"])
	require.InDelta(t, 1120, got["objective"].(float64), 1e-6)

	entries, err := journal.ReadFile(log)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = os.Stat(export)
	require.NoError(t, err)

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(metrics), `tabopt_solves_total{kind="transport",status="OPTIMAL"} 1`)
}

func TestSolveAssignmentYAML(t *testing.T) {
	book := filepath.Join(t.TempDir(), "assign.xlsx")
	_, err := run(t, "example", "assignment", "-o", book)
	require.NoError(t, err)

	out, err := run(t, "solve", "assign", "-f", book, "--sense", "max", "--format", "yaml")
	require.NoError(t, err)

	var got struct {
		Status    string  `yaml:"status"`
		Objective float64 `yaml:"objective"`
		Pairs     []struct {
			Row string `yaml:"row"`
			Col string `yaml:"col"`
		} `yaml:"pairs"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Equal(t, "OPTIMAL", got.Status)
	require.Equal(t, 11.0, got.Objective)
	require.Len(t, got.Pairs, 3)
}

func TestTemplatePrints(t *testing.T) {
	out, err := run(t, "template", "transport", "--origins", "2", "--destinations", "2")
	require.NoError(t, err)
	require.Contains(t, out, "[costos]")
	require.Equal(t, 6, strings.Count(out, "\n"), "heading, header and four routes")
}

func TestSolveErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "solve", "knapsack", "-f", "x.xlsx")
	require.Error(t, err)
	require.Equal(t, exitInput, exitCode(err))

	_, err = run(t, "solve", "maximize", "-f", filepath.Join(dir, "absent.xlsx"))
	require.Equal(t, exitInput, exitCode(err))

	_, err = run(t, "solve", "maximize", "-f", "x.xlsx", "--format", "xml")
	require.Equal(t, exitInput, exitCode(err))

	// A transport workbook has no modelo / restricciones sheets.
	book := filepath.Join(dir, "transport.xlsx")
	_, err = run(t, "example", "transport", "-o", book)
	require.NoError(t, err)
	_, err = run(t, "solve", "minimize", "-f", book)
	require.ErrorIs(t, err, model.ErrSchema)
	require.Equal(t, exitInput, exitCode(err))

	_, err = run(t, "--log-format", "xml", "example", "maximize")
	var ue *usageError
	require.True(t, errors.As(err, &ue))
}

func TestExitCode(t *testing.T) {
	require.Equal(t, exitOK, exitCode(nil))
	require.Equal(t, exitFailure, exitCode(errors.New("disk on fire")))
}
