// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package streamtest provides an in-process websocket server speaking the
// stream frame protocol, for tests of code built on package stream.
package streamtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziqni/ziqni-go-samples/models"
)

// Handler answers one request frame. Returning nil sends nothing.
type Handler func(conn *Conn, req models.Frame) *models.Frame

// Server is a fake platform endpoint.
type Server struct {
	*httptest.Server

	upgrader websocket.Upgrader
	handler  Handler

	// Authorize, when set, rejects handshakes it returns a non-2xx status for.
	Authorize func(r *http.Request) int

	mu      sync.Mutex
	conns   []*Conn
	headers []http.Header
	accepts atomic.Int32
}

// NewServer starts a server answering requests with h.
func NewServer(h Handler) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  2048,
			WriteBufferSize: 2048,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		handler: h,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveWS))
	return s
}

// URL returns the ws:// address of the server.
func (s *Server) URL() string {
	return "ws" + strings.TrimPrefix(s.Server.URL, "http")
}

// Accepted returns the number of upgraded connections so far.
func (s *Server) Accepted() int {
	return int(s.accepts.Load())
}

// AwaitConnections waits until at least n connections have been accepted
// and reports whether that happened within timeout.
func (s *Server) AwaitConnections(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for s.Accepted() < n {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(5 * time.Millisecond)
	}
	return true
}

// Headers returns the handshake headers of every accepted connection.
func (s *Server) Headers() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]http.Header(nil), s.headers...)
}

// Push sends a push frame to every open connection.
func (s *Server) Push(destination string, body any) {
	s.Send(models.Frame{Type: models.FramePush, Destination: destination, Body: MustJSON(body)})
}

// Send writes frame to every open connection.
func (s *Server) Send(frame models.Frame) {
	for _, c := range s.open() {
		_ = c.Write(frame)
	}
}

// DropConnections closes every open connection without a close handshake.
func (s *Server) DropConnections() {
	for _, c := range s.open() {
		_ = c.ws.Close()
	}
}

func (s *Server) open() []*Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Conn(nil), s.conns...)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	if s.Authorize != nil {
		if status := s.Authorize(r); status < 200 || status > 299 {
			http.Error(w, http.StatusText(status), status)
			return
		}
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	conn := &Conn{ws: ws}

	s.mu.Lock()
	s.conns = append(s.conns, conn)
	s.headers = append(s.headers, r.Header.Clone())
	s.mu.Unlock()
	s.accepts.Add(1)

	defer s.remove(conn)
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return
		}
		var req models.Frame
		if err := json.Unmarshal(data, &req); err != nil {
			continue
		}
		if s.handler == nil {
			continue
		}
		if resp := s.handler(conn, req); resp != nil {
			_ = conn.Write(*resp)
		}
	}
}

func (s *Server) remove(conn *Conn) {
	_ = conn.ws.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.conns {
		if c == conn {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			return
		}
	}
}

// Conn is the server side of one client connection.
type Conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

// Write sends frame to the client.
func (c *Conn) Write(frame models.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(frame)
}

// Respond builds a response frame answering req with body.
func Respond(req models.Frame, body any) *models.Frame {
	return &models.Frame{Type: models.FrameResponse, ID: req.ID, Destination: req.Destination, Body: MustJSON(body)}
}

// Fail builds an error frame answering req.
func Fail(req models.Frame, code int, message string) *models.Frame {
	return &models.Frame{
		Type:        models.FrameError,
		ID:          req.ID,
		Destination: req.Destination,
		Body:        MustJSON(models.APIError{ErrorCode: code, Message: message}),
	}
}

// MustJSON marshals v or panics.
func MustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
