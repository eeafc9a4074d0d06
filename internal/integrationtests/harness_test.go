package integrationtests

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/beamgridgo/internal/app"
	"github.com/specialistvlad/beamgridgo/internal/testutil"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// jsonReport mirrors the json report closely enough for assertions.
type jsonReport struct {
	Name   string    `json:"name"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Runs   []jsonRun `json:"runs"`
	Best   jsonRun   `json:"best"`
}

type jsonRun struct {
	Index     int    `json:"index"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Heading   string `json:"heading"`
	Energized int    `json:"energized"`
}

// RunIntegrationTest writes files into a fresh directory, lets configure
// point the app config at them, and runs the app once.
func RunIntegrationTest(t *testing.T, files map[string]string, configure func(dir string, cfg *app.Config)) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, configure)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, configure func(dir string, cfg *app.Config)) *HarnessResult {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	cfg := &app.Config{LogFormat: "text", Workers: 4}
	configure(dir, cfg)

	testApp, out, logs := app.SetupAppTest(t, cfg)
	err := testApp.Run(ctx)

	t.Cleanup(func() {
		if os.Getenv("BEAMGRID_TEST_LOGS") == "true" {
			t.Logf("--- Report for %s ---\n%s", t.Name(), out.String())
		}
	})

	return &HarnessResult{
		Dir:       dir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
		App:       testApp,
	}
}

// DecodeJSONReport parses the json report of a successful run.
func DecodeJSONReport(t *testing.T, result *HarnessResult) jsonReport {
	t.Helper()
	require.NoError(t, result.Err, "app.Run() returned an unexpected error")
	var doc jsonReport
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc), "report is not valid json:\n%s", result.Output)
	return doc
}

// inDir joins name onto the harness directory.
func inDir(dir, name string) string {
	return filepath.Join(dir, name)
}
