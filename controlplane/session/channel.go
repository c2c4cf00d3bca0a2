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

package session

import (
	"sync"
	"sync/atomic"

	"github.com/craftops/warden/controlplane/authz"
	"github.com/gorilla/websocket"
)

type channelState int

const (
	stateUnauthenticated channelState = iota
	stateAuthenticated
	stateClosed
)

// Channel is one viewer connection. it starts unauthenticated and
// only accepts authenticate and ping until the in-band credential
// message has been verified.
type Channel struct {
	conn *websocket.Conn
	send chan ServerMessage

	mu      sync.Mutex
	state   channelState
	subject authz.Subject

	// awaitingPong is set when a liveness ping goes out and cleared by
	// the pong handler. still set at the next ping means the peer
	// missed a full interval and gets closed.
	awaitingPong atomic.Bool
}

func newChannel(conn *websocket.Conn) *Channel {
	return &Channel{
		conn: conn,
		send: make(chan ServerMessage, 256),
	}
}

func (ch *Channel) authenticate(sub authz.Subject) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.state == stateUnauthenticated {
		ch.state = stateAuthenticated
		ch.subject = sub
	}
}

func (ch *Channel) authenticated() (authz.Subject, bool) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.subject, ch.state == stateAuthenticated
}

// trySend queues a message without blocking. messages to a viewer
// that cannot keep up are dropped rather than stalling the fan-out.
// the send happens under the lock so shutdown cannot close the
// channel in between.
func (ch *Channel) trySend(msg ServerMessage) bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.state == stateClosed {
		return false
	}

	select {
	case ch.send <- msg:
		return true
	default:
		return false
	}
}

// shutdown marks the channel closed and stops the write pump. safe to
// call more than once.
func (ch *Channel) shutdown() {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.state == stateClosed {
		return
	}
	ch.state = stateClosed

	close(ch.send)
	_ = ch.conn.Close()
}

// writePump serializes all writes to the underlying connection.
func (ch *Channel) writePump() {
	for msg := range ch.send {
		if err := ch.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
