package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/beamgridgo/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. It returns the
// app, its report output and its log output.
func SetupAppTest(t *testing.T, cfg *Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, cfg)

	t.Cleanup(func() {
		if os.Getenv("BEAMGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
