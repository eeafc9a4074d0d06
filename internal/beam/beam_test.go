package beam

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/beamgridgo/internal/optics"
	"github.com/specialistvlad/beamgridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdges_CanonicalOrder(t *testing.T) {
	t.Parallel()

	g := testutil.MustGrid(t, "...\n...\n")

	expected := []Beam{
		At(0, 0, optics.Right), At(0, 1, optics.Right),
		At(2, 0, optics.Left), At(2, 1, optics.Left),
		At(0, 0, optics.Down), At(1, 0, optics.Down), At(2, 0, optics.Down),
		At(0, 1, optics.Up), At(1, 1, optics.Up), At(2, 1, optics.Up),
	}

	if diff := cmp.Diff(expected, Edges(g)); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

func TestEdges_CountAndBounds(t *testing.T) {
	t.Parallel()

	g := testutil.MustGrid(t, testutil.SampleLayout)
	starts := Edges(g)

	require.Len(t, starts, 2*g.Width()+2*g.Height())
	seen := make(map[Beam]bool, len(starts))
	for _, s := range starts {
		assert.True(t, g.Contains(s.Pos), "start %s must be inside the grid", s)
		assert.False(t, seen[s], "duplicate start %s", s)
		seen[s] = true
	}
}

func TestBeam_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(3,0) down", At(3, 0, optics.Down).String())
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	o, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, FIFO, o)

	o, err = ParseOrder("LIFO")
	require.NoError(t, err)
	assert.Equal(t, LIFO, o)
	assert.Equal(t, "lifo", o.String())

	_, err = ParseOrder("random")
	require.ErrorIs(t, err, ErrUnknownOrder)
}

func TestWorklist_FIFOCompaction(t *testing.T) {
	t.Parallel()

	w := newWorklist(FIFO, 0)
	for i := 0; i < 200; i++ {
		w.push(At(i, 0, optics.Right))
	}
	for i := 0; i < 150; i++ {
		require.Equal(t, i, w.pop().Pos.X)
	}
	w.push(At(200, 0, optics.Right))
	require.Equal(t, 51, w.len())
	for i := 150; i <= 200; i++ {
		require.Equal(t, i, w.pop().Pos.X)
	}
	require.Zero(t, w.len())
}

func TestWorklist_LIFO(t *testing.T) {
	t.Parallel()

	w := newWorklist(LIFO, 0)
	w.push(At(1, 0, optics.Right))
	w.push(At(2, 0, optics.Right))
	assert.Equal(t, 2, w.pop().Pos.X)
	assert.Equal(t, 1, w.pop().Pos.X)
	assert.Zero(t, w.len())
}
