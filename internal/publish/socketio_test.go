package publish

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/specialistvlad/beamgridgo/internal/beam"
	"github.com/specialistvlad/beamgridgo/internal/optics"
	"github.com/specialistvlad/beamgridgo/internal/search"
	"github.com/specialistvlad/beamgridgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayload(t *testing.T) {
	t.Parallel()

	run := search.Run{Index: 12, Start: beam.At(3, 0, optics.Down), Energized: 51}

	p := NewPayload("search-1", run)

	assert.Equal(t, Payload{SearchID: "search-1", Index: 12, X: 3, Y: 0, Heading: "down", Energized: 51}, p)

	encoded, err := json.Marshal(p)
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(encoded, &fromJSON))
	for key := range p.Map() {
		assert.Contains(t, fromJSON, key, "map and JSON keys should match")
	}
	assert.Len(t, p.Map(), len(fromJSON))
}

func TestDial_RejectsBadURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "no scheme", url: "localhost:3000"},
		{name: "unparseable", url: "http://[::1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Dial(context.Background(), Options{URL: tc.url, ConnectTimeout: time.Second})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse URL")
		})
	}
}

func TestPublisher_ClosedIsNotConnected(t *testing.T) {
	t.Parallel()

	var p *Publisher
	require.NoError(t, p.Close())
	require.ErrorIs(t, p.Record(context.Background(), search.Run{}), ErrNotConnected)

	p = &Publisher{}
	require.ErrorIs(t, p.Record(context.Background(), search.Run{}), ErrNotConnected)
}

func TestPublisher_LogsThroughDialLogger(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	logs := &testutil.SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := &Publisher{logger: logger}

	// --- Act ---
	p.log().Debug("Disconnecting socket.io publisher")

	// --- Assert ---
	assert.Same(t, logger, p.log())
	assert.Contains(t, logs.String(), "Disconnecting socket.io publisher")
	assert.Same(t, slog.Default(), (&Publisher{}).log())
}
