package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/beamgridgo/internal/beam"
	"github.com/specialistvlad/beamgridgo/internal/optics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		manifest  Manifest
		expectErr string
	}{
		{
			name:     "minimal manifest",
			manifest: Manifest{Layout: "grid.txt"},
		},
		{
			name: "everything set",
			manifest: Manifest{
				Layout:  "grid.txt",
				Workers: 8,
				Order:   "lifo",
				Starts:  []Start{{Name: "a", X: 1, Y: 2, Heading: "up"}},
				Output:  Output{Format: "JSON"},
			},
		},
		{
			name:      "negative workers",
			manifest:  Manifest{Workers: -1},
			expectErr: "workers must not be negative",
		},
		{
			name:      "bad order",
			manifest:  Manifest{Order: "sideways"},
			expectErr: "unknown worklist order",
		},
		{
			name:      "bad heading",
			manifest:  Manifest{Starts: []Start{{Name: "x", Heading: "north"}}},
			expectErr: `start "x": unknown direction`,
		},
		{
			name:      "bad format",
			manifest:  Manifest{Output: Output{Format: "xml"}},
			expectErr: `unknown output format "xml"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.manifest.Validate()
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidManifest)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestManifest_Beams(t *testing.T) {
	t.Parallel()

	m := Manifest{Starts: []Start{
		{Name: "corner", X: 0, Y: 0, Heading: "right"},
		{Name: "top", X: 3, Y: 0, Heading: "D"},
	}}

	beams, err := m.Beams()
	require.NoError(t, err)
	if diff := cmp.Diff([]beam.Beam{beam.At(0, 0, optics.Right), beam.At(3, 0, optics.Down)}, beams); diff != "" {
		t.Errorf("Beams() mismatch (-want +got):\n%s", diff)
	}
}

func TestManifest_Merge(t *testing.T) {
	t.Parallel()

	base := &Manifest{Name: "sample", Layout: "a.txt", Workers: 2, Starts: []Start{{Name: "s1", Heading: "up"}}}
	other := &Manifest{
		Workers: 6,
		Order:   "lifo",
		Starts:  []Start{{Name: "s2", Heading: "down"}},
		Output:  Output{Format: "json", Render: true, ResultsDB: "runs.db"},
	}

	require.NoError(t, base.Merge(other))
	require.NoError(t, base.Merge(nil))

	expected := &Manifest{
		Name:    "sample",
		Layout:  "a.txt",
		Workers: 6,
		Order:   "lifo",
		Starts:  []Start{{Name: "s1", Heading: "up"}, {Name: "s2", Heading: "down"}},
		Output:  Output{Format: "json", Render: true, ResultsDB: "runs.db"},
	}
	if diff := cmp.Diff(expected, base); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestManifest_MergeRejectsSecondContraption(t *testing.T) {
	t.Parallel()

	base := &Manifest{Name: "one", Layout: "a.txt"}
	err := base.Merge(&Manifest{Name: "two"})
	require.ErrorIs(t, err, ErrInvalidManifest)

	err = base.Merge(&Manifest{Layout: "b.txt"})
	require.ErrorIs(t, err, ErrInvalidManifest)
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	manifest := filepath.Join("configs", "run.hcl")
	abs := filepath.Join(string(filepath.Separator), "data", "grid.txt")

	assert.Equal(t, filepath.Join("configs", "grid.txt"), ResolvePath(manifest, "grid.txt"))
	assert.Equal(t, abs, ResolvePath(manifest, abs))
	assert.Equal(t, "", ResolvePath(manifest, ""))
}
