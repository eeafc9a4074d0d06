// Package publish streams search runs to a Socket.IO server as they finish,
// so dashboards can follow long searches live.
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/specialistvlad/beamgridgo/internal/ctxlog"
	"github.com/specialistvlad/beamgridgo/internal/search"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultEvent is the event name runs are emitted under.
const DefaultEvent = "energized"

// ErrNotConnected is returned by Record after Close.
var ErrNotConnected = errors.New("socket.io publisher is not connected")

// Options configures a Publisher.
type Options struct {
	URL                string
	Namespace          string
	Event              string
	SearchID           string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

// Payload is the body of every emitted event.
type Payload struct {
	SearchID  string `json:"search_id"`
	Index     int    `json:"index"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Heading   string `json:"heading"`
	Energized int    `json:"energized"`
}

// NewPayload converts a run into its wire payload.
func NewPayload(searchID string, run search.Run) Payload {
	return Payload{
		SearchID:  searchID,
		Index:     run.Index,
		X:         run.Start.Pos.X,
		Y:         run.Start.Pos.Y,
		Heading:   run.Start.Heading.String(),
		Energized: run.Energized,
	}
}

// Map returns the payload as a plain map, the shape the Socket.IO encoder
// handles without reflection surprises.
func (p Payload) Map() map[string]any {
	return map[string]any{
		"search_id": p.SearchID,
		"index":     p.Index,
		"x":         p.X,
		"y":         p.Y,
		"heading":   p.Heading,
		"energized": p.Energized,
	}
}

// Publisher is a search.Recorder that emits every run over one Socket.IO
// connection.
type Publisher struct {
	io     *socket.Socket
	event  string
	search string
	logger *slog.Logger
}

// Dial connects to the Socket.IO server and waits for the connection to be
// established, the context to end, or the connect timeout to pass.
func Dial(ctx context.Context, opts Options) (*Publisher, error) {
	logger := ctxlog.FromContext(ctx).With("publisher", "socketio", "url", opts.URL)

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("failed to parse URL: %q has no scheme or host", opts.URL)
	}
	if opts.Event == "" {
		opts.Event = DefaultEvent
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 15 * time.Second
	}

	sockOpts := socket.DefaultOptions()
	sockOpts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sockOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sockOpts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sockOpts)
	io := manager.Socket(opts.Namespace, sockOpts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		logger.Debug("Connection error event fired", "error", err)
		connectChan <- err
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &Publisher{io: io, event: opts.Event, search: opts.SearchID, logger: logger}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(opts.ConnectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", opts.ConnectTimeout)
	}
}

// Record emits run under the configured event.
func (p *Publisher) Record(ctx context.Context, run search.Run) error {
	if p == nil || p.io == nil {
		return ErrNotConnected
	}
	return p.io.Emit(p.event, NewPayload(p.search, run).Map())
}

// Close disconnects from the server.
func (p *Publisher) Close() error {
	if p == nil || p.io == nil {
		return nil
	}
	p.log().Debug("Disconnecting socket.io publisher", "sid", p.io.Id())
	p.io.Disconnect()
	p.io = nil
	return nil
}

func (p *Publisher) log() *slog.Logger {
	if p.logger == nil {
		return slog.Default()
	}
	return p.logger
}
