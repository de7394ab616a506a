// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/ziqni/ziqni-go-samples/internal/logger"
	"github.com/ziqni/ziqni-go-samples/internal/metrics"
	"github.com/ziqni/ziqni-go-samples/internal/utils"
	"github.com/ziqni/ziqni-go-samples/models"
)

const (
	defaultHandshakeTimeout  = 10 * time.Second
	defaultReconnectInterval = 2 * time.Second
	defaultRequestsPerSecond = 10
	writeTimeout             = 10 * time.Second
	statesBuffer             = 32
)

// Config configures a websocket client.
type Config struct {
	// URL is the ws:// or wss:// endpoint.
	URL string

	// Header is sent with every handshake; see MemberHeader and AdminHeader.
	Header http.Header

	HandshakeTimeout  time.Duration
	ReconnectInterval time.Duration
	RequestsPerSecond float64
}

type result struct {
	frame models.Frame
	err   error
}

type subscription struct {
	handler PushHandler
}

// WebsocketClient is the gorilla/websocket implementation of [Client].
type WebsocketClient struct {
	cfg     Config
	dialer  *websocket.Dialer
	limiter *rate.Limiter
	ids     *utils.UUIDGenerator
	metrics *metrics.Metrics
	logger  *logger.Logger

	mu           sync.Mutex
	conn         *websocket.Conn
	state        State
	connected    chan struct{}
	pending      map[string]chan result
	subs         map[string][]*subscription
	faultHandler func(any)
	started      bool
	stopped      bool
	cancel       context.CancelFunc

	writeMu sync.Mutex

	states   chan StateChange
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWebsocketClient builds an idle client. Zero durations and rates fall
// back to package defaults. m may be nil.
func NewWebsocketClient(cfg Config, m *metrics.Metrics, logger *logger.Logger) *WebsocketClient {
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = defaultHandshakeTimeout
	}
	if cfg.ReconnectInterval <= 0 {
		cfg.ReconnectInterval = defaultReconnectInterval
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	burst := int(cfg.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	c := &WebsocketClient{
		cfg: cfg,
		dialer: &websocket.Dialer{
			HandshakeTimeout:  cfg.HandshakeTimeout,
			EnableCompression: true,
			Proxy:             http.ProxyFromEnvironment,
		},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		ids:       utils.NewUUIDGenerator(),
		metrics:   m,
		logger:    logger,
		connected: make(chan struct{}),
		pending:   make(map[string]chan result),
		subs:      make(map[string][]*subscription),
		states:    make(chan StateChange, statesBuffer),
	}
	c.faultHandler = func(recovered any) {
		c.logger.Error().Interface("panic", recovered).Msg("push handler panicked")
	}

	return c
}

// Start implements [Client].
func (c *WebsocketClient) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrClosed
	}
	if c.started {
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.started = true
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(runCtx)
	}()

	return nil
}

// run dials, serves the connection until it drops, and redials after
// ReconnectInterval until ctx is done or the handshake is refused.
func (c *WebsocketClient) run(ctx context.Context) {
	for {
		c.setState(StateConnecting, nil)

		conn, err := c.dial(ctx)
		switch {
		case ctx.Err() != nil:
			if conn != nil {
				_ = conn.Close()
			}
			return
		case errors.Is(err, ErrHandshakeRejected):
			c.logger.Error().Err(err).Str("url", c.cfg.URL).Msg("stream connection refused")
			c.setState(StateSevereFailure, err)
			return
		case err != nil:
			c.logger.Warn().Err(err).Str("url", c.cfg.URL).Msg("stream dial failed")
			c.setState(StateDisconnected, err)
		default:
			c.attach(conn)
			err = c.readLoop(ctx, conn)
			c.detach(conn, err)
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn().Err(err).Msg("stream connection lost")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.cfg.ReconnectInterval):
		}
	}
}

func (c *WebsocketClient) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, resp, err := c.dialer.DialContext(ctx, c.cfg.URL, c.cfg.Header)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
				return nil, fmt.Errorf("%w: %s", ErrHandshakeRejected, resp.Status)
			}
			return nil, fmt.Errorf("dial %s: %s: %w", c.cfg.URL, resp.Status, err)
		}
		return nil, fmt.Errorf("dial %s: %w", c.cfg.URL, err)
	}

	return conn, nil
}

func (c *WebsocketClient) attach(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn = conn
	c.setStateLocked(StateConnected, nil)
	close(c.connected)
	c.logger.Info().Str("url", c.cfg.URL).Msg("stream connected")
}

// detach forgets conn, fails the requests waiting on it and hands out a
// fresh Connected channel.
func (c *WebsocketClient) detach(conn *websocket.Conn, cause error) {
	_ = conn.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == conn {
		c.conn = nil
	}
	c.connected = make(chan struct{})
	c.failPendingLocked(ErrDisconnected)
	if !c.stopped {
		c.setStateLocked(StateDisconnected, cause)
	}
}

func (c *WebsocketClient) readLoop(ctx context.Context, conn *websocket.Conn) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var frame models.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			c.logger.Warn().Err(err).Msg("dropping malformed frame")
			continue
		}
		c.metrics.ObserveFrame(string(frame.Type))
		c.route(frame)
	}
}

// route hands response and error frames to the pending request with the
// same id; pushes and unsolicited error frames go to subscribers.
func (c *WebsocketClient) route(frame models.Frame) {
	if frame.ID != "" && (frame.Type == models.FrameResponse || frame.Type == models.FrameError) {
		c.mu.Lock()
		ch, ok := c.pending[frame.ID]
		delete(c.pending, frame.ID)
		c.mu.Unlock()

		if ok {
			ch <- result{frame: frame}
			return
		}
	}

	if frame.Type != models.FramePush && frame.Type != models.FrameError {
		c.logger.Debug().Str("id", frame.ID).Str("type", string(frame.Type)).Msg("dropping unmatched frame")
		return
	}

	c.mu.Lock()
	subs := append([]*subscription(nil), c.subs[frame.Destination]...)
	fault := c.faultHandler
	c.mu.Unlock()

	for _, s := range subs {
		c.deliver(s.handler, frame, fault)
	}
}

func (c *WebsocketClient) deliver(h PushHandler, frame models.Frame, fault func(any)) {
	defer func() {
		if r := recover(); r != nil {
			fault(r)
		}
	}()
	h(frame)
}

// IsConnected implements [Client].
func (c *WebsocketClient) IsConnected() bool {
	return c.State() == StateConnected
}

// Connected implements [Client].
func (c *WebsocketClient) Connected() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// State implements [Client].
func (c *WebsocketClient) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// States implements [Client].
func (c *WebsocketClient) States() <-chan StateChange {
	return c.states
}

func (c *WebsocketClient) setState(s State, cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setStateLocked(s, cause)
}

// setStateLocked records s and publishes it without blocking; a full
// channel drops the change.
func (c *WebsocketClient) setStateLocked(s State, cause error) {
	c.state = s
	c.metrics.SetConnectionState(s.String(), s == StateConnected)

	if c.stopped {
		return
	}
	select {
	case c.states <- StateChange{State: s, Err: cause, At: time.Now()}:
	default:
		c.logger.Warn().Str("state", s.String()).Msg("state change dropped, no reader")
	}
}

// Request implements [Client].
func (c *WebsocketClient) Request(ctx context.Context, destination string, body, out any) error {
	outcome := metrics.OutcomeError
	defer func() { c.metrics.ObserveRequest(outcome) }()

	if err := c.limiter.Wait(ctx); err != nil {
		outcome = metrics.OutcomeCanceled
		return fmt.Errorf("request %s: %w", destination, err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request %s: %w", destination, err)
	}
	frame := models.Frame{
		Type:        models.FrameRequest,
		ID:          c.ids.Generate(),
		Destination: destination,
		Body:        payload,
	}

	ch := make(chan result, 1)
	c.mu.Lock()
	switch {
	case c.stopped:
		c.mu.Unlock()
		outcome = metrics.OutcomeClosed
		return ErrClosed
	case c.conn == nil:
		c.mu.Unlock()
		return fmt.Errorf("request %s: %w", destination, ErrNotConnected)
	}
	conn := c.conn
	c.pending[frame.ID] = ch
	c.mu.Unlock()

	if err := c.write(conn, frame); err != nil {
		c.forget(frame.ID)
		return fmt.Errorf("request %s: %w", destination, errors.Join(ErrNotConnected, err))
	}

	select {
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, ErrClosed) {
				outcome = metrics.OutcomeClosed
			}
			return fmt.Errorf("request %s: %w", destination, res.err)
		}
		if res.frame.Type == models.FrameError {
			return DecodeProtocolError(destination, res.frame.Body)
		}
		if out != nil && len(res.frame.Body) > 0 {
			if err := json.Unmarshal(res.frame.Body, out); err != nil {
				return fmt.Errorf("decode response %s: %w", destination, err)
			}
		}
		outcome = metrics.OutcomeOK
		return nil
	case <-ctx.Done():
		c.forget(frame.ID)
		outcome = metrics.OutcomeTimeout
		if errors.Is(ctx.Err(), context.Canceled) {
			outcome = metrics.OutcomeCanceled
		}
		return fmt.Errorf("request %s: %w", destination, ctx.Err())
	}
}

func (c *WebsocketClient) write(conn *websocket.Conn, frame models.Frame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(frame)
}

func (c *WebsocketClient) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *WebsocketClient) failPendingLocked(err error) {
	for id, ch := range c.pending {
		ch <- result{err: err}
		delete(c.pending, id)
	}
}

// DecodeProtocolError converts the body of an error frame into a
// *ProtocolError for destination.
func DecodeProtocolError(destination string, body json.RawMessage) error {
	var apiErr models.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || (apiErr.Message == "" && apiErr.ErrorCode == 0) {
		return &ProtocolError{Destination: destination, Message: string(body)}
	}
	return &ProtocolError{Destination: destination, Code: apiErr.ErrorCode, Message: apiErr.Message}
}

// Subscribe implements [Client].
func (c *WebsocketClient) Subscribe(destination string, h PushHandler) func() {
	s := &subscription{handler: h}

	c.mu.Lock()
	c.subs[destination] = append(c.subs[destination], s)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()

			list := c.subs[destination]
			for i, item := range list {
				if item == s {
					c.subs[destination] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
			if len(c.subs[destination]) == 0 {
				delete(c.subs, destination)
			}
		})
	}
}

// SetFaultHandler implements [Client].
func (c *WebsocketClient) SetFaultHandler(fn func(recovered any)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.faultHandler = fn
	c.mu.Unlock()
}

// Stop implements [Client].
func (c *WebsocketClient) Stop() error {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		cancel := c.cancel
		conn := c.conn
		c.failPendingLocked(ErrClosed)
		c.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		if conn != nil {
			c.writeMu.Lock()
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			c.writeMu.Unlock()
			_ = conn.Close()
		}
		c.wg.Wait()

		c.mu.Lock()
		c.state = StateDisconnected
		c.metrics.SetConnectionState(StateDisconnected.String(), false)
		c.mu.Unlock()

		close(c.states)
		c.logger.Info().Str("url", c.cfg.URL).Msg("stream client stopped")
	})

	return nil
}
