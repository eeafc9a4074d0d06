package yamlconfig

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/beamgridgo/internal/config"
	"github.com/specialistvlad/beamgridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"run.yaml": `
contraption:
  name: sample
  layout: layouts/sample.txt
  workers: 3
  order: fifo
starts:
  - {name: corner, x: 0, y: 0, heading: right}
  - name: best
    x: 3
    y: 0
    heading: D
output:
  format: text
  render: true
  results_db: runs.db
`,
	})

	// --- Act ---
	m, err := NewLoader().Load(context.Background(), filepath.Join(dir, "run.yaml"))

	// --- Assert ---
	require.NoError(t, err)
	expected := &config.Manifest{
		Name:    "sample",
		Layout:  filepath.Join(dir, "layouts", "sample.txt"),
		Workers: 3,
		Order:   "fifo",
		Starts: []config.Start{
			{Name: "corner", X: 0, Y: 0, Heading: "right"},
			{Name: "best", X: 3, Y: 0, Heading: "D"},
		},
		Output: config.Output{Format: "text", Render: true, ResultsDB: filepath.Join(dir, "runs.db")},
	}
	if diff := cmp.Diff(expected, m); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"run.yaml": "contraption:\n  layout: a.txt\n  wokers: 2\n",
	})

	_, err := NewLoader().Load(context.Background(), filepath.Join(dir, "run.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode YAML file")
}

func TestLoad_InvalidHeading(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"run.yaml": "starts:\n  - {name: s, x: 0, y: 0, heading: sideways}\n",
	})

	_, err := NewLoader().Load(context.Background(), filepath.Join(dir, "run.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidManifest)
}

func TestLoad_EmptyFileIsEmptyManifest(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{"run.yaml": ""})

	m, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, &config.Manifest{}, m)
}

func TestLoad_DirectoryCollectsBothExtensions(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"a.yaml":    "contraption:\n  layout: /layouts/sample.txt\n",
		"b.yml":     "starts:\n  - {name: s, x: 1, y: 0, heading: down}\n",
		"notes.txt": "ignored",
	})

	m, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, "/layouts/sample.txt", m.Layout)
	require.Len(t, m.Starts, 1)
	assert.Equal(t, config.Start{Name: "s", X: 1, Y: 0, Heading: "down"}, m.Starts[0])
}
