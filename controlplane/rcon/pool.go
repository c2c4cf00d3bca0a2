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

// Package rcon maintains at most one live command connection per
// instance. connections are established lazily on first use and
// reaped by a background sweep once idle for too long.
package rcon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	gorcon "github.com/gorcon/rcon"
)

const (
	DefaultIdleTimeout   = 5 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Conn is the live command connection. satisfied by *gorcon.Conn.
type Conn interface {
	Execute(command string) (string, error)
	Close() error
}

// Dialer opens and authenticates a command connection.
type Dialer func(endpoint string, credential string) (Conn, error)

// GorconDialer dials the Source RCON protocol.
func GorconDialer(endpoint string, credential string) (Conn, error) {
	return gorcon.Dial(endpoint, credential, gorcon.SetDialTimeout(5*time.Second))
}

// pooledConn is one instance's slot in the pool. mu serializes dialing
// and command execution, the connection is not safe for concurrent use.
// lastUsed is guarded by the pool mutex, not mu, so the sweep can read
// it without waiting on in-flight commands.
type pooledConn struct {
	mu     sync.Mutex
	conn   Conn
	closed bool

	lastUsed time.Time
}

type Pool struct {
	logger        *slog.Logger
	dial          Dialer
	idleTimeout   time.Duration
	sweepInterval time.Duration

	mu    sync.Mutex
	conns map[string]*pooledConn

	done chan struct{}
	once sync.Once
}

func NewPool(logger *slog.Logger, dial Dialer) *Pool {
	return &Pool{
		logger:        logger.With("component", "rcon-pool"),
		dial:          dial,
		idleTimeout:   DefaultIdleTimeout,
		sweepInterval: DefaultSweepInterval,
		conns:         make(map[string]*pooledConn),
		done:          make(chan struct{}),
	}
}

// Start launches the idle sweep. stops when Shutdown is called.
func (p *Pool) Start() {
	go func() {
		ticker := time.NewTicker(p.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.sweep()
			case <-p.done:
				return
			}
		}
	}()
}

// Execute runs the command over the cached connection for the
// instance, dialing and authenticating first when none is cached.
// a cached connection that fails is dropped so the next call can
// re-establish it.
func (p *Pool) Execute(ctx context.Context, instanceID string, command string, endpoint string, credential string) (string, error) {
	for {
		pc := p.entry(instanceID)

		pc.mu.Lock()
		if pc.closed {
			// the slot was reaped while we waited for it, grab a
			// fresh one
			pc.mu.Unlock()
			continue
		}

		if pc.conn == nil {
			conn, err := p.dial(endpoint, credential)
			if err != nil {
				pc.closed = true
				p.drop(instanceID, pc)
				pc.mu.Unlock()
				return "", fmt.Errorf("connect %s: %w", endpoint, err)
			}
			pc.conn = conn
			p.logger.DebugContext(ctx, "opened command connection",
				"instance_id", instanceID,
				"endpoint", endpoint,
			)
		}

		resp, err := pc.conn.Execute(command)
		if err != nil {
			_ = pc.conn.Close()
			pc.conn = nil
			pc.closed = true
			p.drop(instanceID, pc)
			pc.mu.Unlock()
			return "", fmt.Errorf("execute command: %w", err)
		}
		pc.mu.Unlock()

		return resp, nil
	}
}

// entry returns the slot for the instance, creating it when absent,
// and refreshes its last-used time.
func (p *Pool) entry(instanceID string) *pooledConn {
	p.mu.Lock()
	defer p.mu.Unlock()

	pc, ok := p.conns[instanceID]
	if !ok {
		pc = &pooledConn{}
		p.conns[instanceID] = pc
	}
	pc.lastUsed = time.Now()
	return pc
}

// drop removes the slot from the map, but only while the map still
// holds this exact slot. a replacement created after a Close must not
// be discarded.
func (p *Pool) drop(instanceID string, pc *pooledConn) {
	p.mu.Lock()
	if cur, ok := p.conns[instanceID]; ok && cur == pc {
		delete(p.conns, instanceID)
	}
	p.mu.Unlock()
}

// Close drops the cached connection for the instance. close errors
// are swallowed, closing is best-effort. waits for an in-flight
// command on the connection to finish.
func (p *Pool) Close(instanceID string) {
	p.mu.Lock()
	pc, ok := p.conns[instanceID]
	if ok {
		delete(p.conns, instanceID)
	}
	p.mu.Unlock()

	if ok {
		closeSlot(pc)
	}
}

// CloseAll drops every cached connection. used on process shutdown.
func (p *Pool) CloseAll() {
	p.mu.Lock()
	conns := p.conns
	p.conns = make(map[string]*pooledConn)
	p.mu.Unlock()

	for _, pc := range conns {
		closeSlot(pc)
	}
}

func closeSlot(pc *pooledConn) {
	pc.mu.Lock()
	pc.closed = true
	if pc.conn != nil {
		_ = pc.conn.Close()
		pc.conn = nil
	}
	pc.mu.Unlock()
}

// Shutdown stops the sweep and closes every connection.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.done)
	})
	p.CloseAll()
}

func (p *Pool) sweep() {
	cutoff := time.Now().Add(-p.idleTimeout)

	p.mu.Lock()
	// snapshot expired entries first, never close while holding the lock
	expired := make(map[string]*pooledConn)
	for id, pc := range p.conns {
		if pc.lastUsed.Before(cutoff) {
			expired[id] = pc
			delete(p.conns, id)
		}
	}
	p.mu.Unlock()

	for id, pc := range expired {
		closeSlot(pc)
		p.logger.Debug("reaped idle command connection", "instance_id", id)
	}
}
