/*
 Warden, a control plane for hosting and supervising per-tenant game servers.
 Copyright (C) 2025 The Warden Authors

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package session serves the live console: per-viewer websocket
// channels with in-band authentication, per-instance log fan-out and
// command relay over the rcon pool.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/craftops/warden/controlplane/auth"
	"github.com/craftops/warden/controlplane/authz"
	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/craftops/warden/controlplane/instance"
	"github.com/craftops/warden/internal/ptr"
	"github.com/gorilla/websocket"
)

const (
	DefaultPollInterval = time.Second
	DefaultPingInterval = 30 * time.Second
	DefaultLogTail      = 500
)

// InstanceStore is the read-only slice of the instance repository the
// hub needs for existence and state checks.
type InstanceStore interface {
	GetInstanceByID(ctx context.Context, id string) (instance.Instance, error)
}

// LogSource tails workload logs by runtime handle.
type LogSource interface {
	Logs(ctx context.Context, handle string, tailLines int, since time.Time) (string, error)
}

// CommandExecutor relays a console command to the instance.
type CommandExecutor interface {
	Execute(ctx context.Context, instanceID string, command string, endpoint string, credential string) (string, error)
}

// CredentialSource resolves the command-channel credential of an
// instance.
type CredentialSource interface {
	CommandCredential(ctx context.Context, id string) (instance.Credential, error)
}

type Hub struct {
	logger   *slog.Logger
	verifier auth.TokenVerifier
	access   authz.AccessEvaluator
	store    InstanceStore
	logs     LogSource
	exec     CommandExecutor
	creds    CredentialSource

	pollInterval time.Duration
	pingInterval time.Duration
	logTail      int

	mu          sync.Mutex
	channels    map[*Channel]struct{}
	subscribers map[string]map[*Channel]struct{}
	pollers     map[string]*poller

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(
	logger *slog.Logger,
	verifier auth.TokenVerifier,
	access authz.AccessEvaluator,
	store InstanceStore,
	logs LogSource,
	exec CommandExecutor,
	creds CredentialSource,
) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		logger:       logger.With("component", "session-hub"),
		verifier:     verifier,
		access:       access,
		store:        store,
		logs:         logs,
		exec:         exec,
		creds:        creds,
		pollInterval: DefaultPollInterval,
		pingInterval: DefaultPingInterval,
		logTail:      DefaultLogTail,
		channels:     make(map[*Channel]struct{}),
		subscribers:  make(map[string]map[*Channel]struct{}),
		pollers:      make(map[string]*poller),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start launches the liveness ping loop.
func (h *Hub) Start() {
	go h.pingLoop()
}

// Shutdown closes every channel and stops all polls.
func (h *Hub) Shutdown() {
	h.cancel()

	h.mu.Lock()
	channels := make([]*Channel, 0, len(h.channels))
	for ch := range h.channels {
		channels = append(channels, ch)
	}
	h.mu.Unlock()

	for _, ch := range channels {
		h.dropChannel(ch)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the browser client is served from a different origin; access is
	// gated by the in-band authenticate message, not the handshake
	CheckOrigin: func(*http.Request) bool { return true },
}

// ServeHTTP upgrades the request and runs the channel until the peer
// disconnects or liveness closes it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "err", err)
		return
	}

	ch := newChannel(conn)
	conn.SetPongHandler(func(string) error {
		ch.awaitingPong.Store(false)
		return nil
	})

	h.mu.Lock()
	h.channels[ch] = struct{}{}
	h.mu.Unlock()

	go ch.writePump()
	h.readLoop(ch)
	h.dropChannel(ch)
}

func (h *Hub) readLoop(ch *Channel) {
	for {
		var msg ClientMessage
		if err := ch.conn.ReadJSON(&msg); err != nil {
			return
		}
		h.handleMessage(ch, msg)
	}
}

// handleMessage dispatches one inbound frame. every failure becomes a
// structured error message on the channel; the channel is only closed
// on auth failure detected by the caller or on liveness timeout.
func (h *Hub) handleMessage(ch *Channel, msg ClientMessage) {
	if msg.Type == TypePing {
		ch.trySend(ServerMessage{Type: TypePong})
		return
	}

	sub, ok := ch.authenticated()
	if !ok {
		if msg.Type != TypeAuthenticate {
			ch.trySend(errorMessage(string(apierrs.CodeUnauthenticated), "authenticate first"))
			return
		}
		h.handleAuthenticate(ch, msg)
		return
	}

	switch msg.Type {
	case TypeAuthenticate:
		// already authenticated, nothing to do
		ch.trySend(ServerMessage{Type: TypeAuthResult, OK: ptr.Pointer(true)})
	case TypeSubscribe:
		h.handleSubscribe(ch, sub, msg.InstanceID)
	case TypeUnsubscribe:
		h.unsubscribe(ch, msg.InstanceID)
	case TypeRunCommand:
		h.handleRunCommand(ch, sub, msg)
	default:
		ch.trySend(errorMessage(string(apierrs.CodeInvalidArgument), "unknown message type"))
	}
}

func (h *Hub) handleAuthenticate(ch *Channel, msg ClientMessage) {
	sub, err := h.verifier.Verify(msg.Token)
	if err != nil {
		ch.trySend(ServerMessage{
			Type:    TypeAuthResult,
			OK:      ptr.Pointer(false),
			Message: err.Error(),
		})
		// auth failure closes the channel
		ch.shutdown()
		return
	}

	ch.authenticate(sub)
	ch.trySend(ServerMessage{Type: TypeAuthResult, OK: ptr.Pointer(true)})
}

// handleSubscribe re-checks access and existence on every subscribe
// and starts the instance's log poll when this is its first
// subscriber.
func (h *Hub) handleSubscribe(ch *Channel, sub authz.Subject, instanceID string) {
	ok, err := h.access.CanAccess(h.ctx, sub, instanceID)
	if err != nil {
		ch.trySend(errorMessage(string(apierrs.CodeInternal), "access check failed"))
		return
	}
	if !ok {
		ch.trySend(errorMessage(string(apierrs.CodePermissionDenied), "access denied"))
		return
	}

	ins, err := h.store.GetInstanceByID(h.ctx, instanceID)
	if err != nil {
		h.sendServiceError(ch, err)
		return
	}
	if ins.RuntimeHandle == nil {
		ch.trySend(errorMessage(string(apierrs.CodeFailedPrecondition), "instance has no workload"))
		return
	}

	h.mu.Lock()
	set, ok := h.subscribers[instanceID]
	if !ok {
		set = make(map[*Channel]struct{})
		h.subscribers[instanceID] = set
	}
	set[ch] = struct{}{}

	if _, running := h.pollers[instanceID]; !running {
		p := newPoller(
			h.logger,
			instanceID,
			*ins.RuntimeHandle,
			h.pollInterval,
			h.logTail,
			h.logs.Logs,
			h.broadcastLines,
		)
		h.pollers[instanceID] = p
		go p.run(h.ctx)
	}
	h.mu.Unlock()
}

// unsubscribe removes the channel from the instance's subscriber set
// and stops the poll when the set becomes empty.
func (h *Hub) unsubscribe(ch *Channel, instanceID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[instanceID]
	if !ok {
		return
	}
	delete(set, ch)
	if len(set) > 0 {
		return
	}

	delete(h.subscribers, instanceID)
	if p, ok := h.pollers[instanceID]; ok {
		p.halt()
		delete(h.pollers, instanceID)
	}
}

// handleRunCommand checks its preconditions in order and
// short-circuits with a structured failure; only then is the command
// dispatched to the pool.
func (h *Hub) handleRunCommand(ch *Channel, sub authz.Subject, msg ClientMessage) {
	ok, err := h.access.CanAccess(h.ctx, sub, msg.InstanceID)
	if err != nil {
		ch.trySend(errorMessage(string(apierrs.CodeInternal), "access check failed"))
		return
	}
	if !ok {
		ch.trySend(errorMessage(string(apierrs.CodePermissionDenied), "access denied"))
		return
	}

	ins, err := h.store.GetInstanceByID(h.ctx, msg.InstanceID)
	if err != nil {
		h.sendServiceError(ch, err)
		return
	}

	if ins.State != instance.StateRunning {
		h.sendServiceError(ch, apierrs.ErrInstanceNotRunning)
		return
	}

	cred, err := h.creds.CommandCredential(h.ctx, msg.InstanceID)
	if err != nil {
		ch.trySend(errorMessage(string(apierrs.CodeFailedPrecondition), "no command credential"))
		return
	}

	resp, err := h.exec.Execute(h.ctx, msg.InstanceID, msg.Command, cred.Endpoint, cred.Password)
	if err != nil {
		ch.trySend(ServerMessage{
			Type:       TypeCommandResult,
			InstanceID: msg.InstanceID,
			OK:         ptr.Pointer(false),
			Message:    err.Error(),
		})
		return
	}

	ch.trySend(ServerMessage{
		Type:       TypeCommandResult,
		InstanceID: msg.InstanceID,
		OK:         ptr.Pointer(true),
		Text:       resp,
	})
}

// broadcastLines fans new log lines out to every current subscriber
// of the instance, each tagged with a server-side timestamp.
func (h *Hub) broadcastLines(instanceID string, lines []string, ts time.Time) {
	h.mu.Lock()
	set := h.subscribers[instanceID]
	targets := make([]*Channel, 0, len(set))
	for ch := range set {
		targets = append(targets, ch)
	}
	h.mu.Unlock()

	for _, line := range lines {
		msg := ServerMessage{
			Type:       TypeLogLine,
			InstanceID: instanceID,
			Timestamp:  &ts,
			Text:       line,
		}
		for _, ch := range targets {
			ch.trySend(msg)
		}
	}
}

// dropChannel removes the channel from every subscriber set, stopping
// polls that become subscriber-less, and closes it.
func (h *Hub) dropChannel(ch *Channel) {
	h.mu.Lock()
	delete(h.channels, ch)
	for id, set := range h.subscribers {
		delete(set, ch)
		if len(set) == 0 {
			delete(h.subscribers, id)
			if p, ok := h.pollers[id]; ok {
				p.halt()
				delete(h.pollers, id)
			}
		}
	}
	h.mu.Unlock()

	ch.shutdown()
}

// pingLoop pings every open channel on a fixed interval and closes
// any channel that did not answer the previous ping. two strikes, no
// backoff.
func (h *Hub) pingLoop() {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
		case <-h.ctx.Done():
			return
		}

		h.mu.Lock()
		channels := make([]*Channel, 0, len(h.channels))
		for ch := range h.channels {
			channels = append(channels, ch)
		}
		h.mu.Unlock()

		for _, ch := range channels {
			if ch.awaitingPong.Load() {
				h.logger.Debug("closing unresponsive channel")
				h.dropChannel(ch)
				continue
			}
			ch.awaitingPong.Store(true)
			deadline := time.Now().Add(10 * time.Second)
			if err := ch.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				h.dropChannel(ch)
			}
		}
	}
}

func (h *Hub) sendServiceError(ch *Channel, err error) {
	var e apierrs.Error
	if errors.As(err, &e) {
		ch.trySend(errorMessage(string(e.Code), e.Message))
		return
	}
	ch.trySend(errorMessage(string(apierrs.CodeInternal), "internal error"))
}
