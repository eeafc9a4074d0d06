package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/beamgridgo/internal/layout"
	"github.com/stretchr/testify/require"
)

// SampleLayout is the classic 10x10 contraption used across the puzzle's
// published examples.
const SampleLayout = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

// SampleEnergizedMap is the energized map of SampleLayout for a beam entering
// (0,0) heading right.
const SampleEnergizedMap = `######....
.#...#....
.#...#####
.#...##...
.#...##...
.#...##...
.#..####..
########..
.#######..
.#...#.#..
`

const (
	// SampleCornerEnergized is the energized count of SampleLayout from (0,0)
	// heading right.
	SampleCornerEnergized = 46
	// SampleMaxEnergized is the best count over all edge starts of
	// SampleLayout, reached from (3,0) heading down.
	SampleMaxEnergized = 51
)

// MustGrid parses a layout or fails the test.
func MustGrid(t testing.TB, text string) *layout.Grid {
	t.Helper()
	g, err := layout.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

// WriteFiles writes the given relative paths and contents under a fresh
// temporary directory and returns that directory.
func WriteFiles(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
