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

package rcon

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	executed []string
	resp     string
	execErr  error
	closed   bool
}

func (f *fakeConn) Execute(command string) (string, error) {
	f.executed = append(f.executed, command)
	if f.execErr != nil {
		return "", f.execErr
	}
	return f.resp, nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

type fakeDialer struct {
	conns []*fakeConn
	dials int
	err   error
}

func (d *fakeDialer) dial(endpoint string, credential string) (Conn, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.dials++
	c := &fakeConn{resp: "ok"}
	d.conns = append(d.conns, c)
	return c, nil
}

func newTestPool(d *fakeDialer) *Pool {
	return NewPool(slog.New(slog.DiscardHandler), d.dial)
}

func TestExecuteReusesConnection(t *testing.T) {
	var (
		ctx  = context.Background()
		d    = &fakeDialer{}
		pool = newTestPool(d)
	)

	resp, err := pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.NoError(t, err)
	require.Equal(t, "ok", resp)

	_, err = pool.Execute(ctx, "ins-1", "say hi", "127.0.0.1:25575", "secret")
	require.NoError(t, err)

	require.Equal(t, 1, d.dials)
	require.Equal(t, []string{"list", "say hi"}, d.conns[0].executed)
}

func TestExecuteDialFailure(t *testing.T) {
	var (
		ctx  = context.Background()
		d    = &fakeDialer{err: errors.New("connection refused")}
		pool = newTestPool(d)
	)

	_, err := pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.Error(t, err)
}

func TestExecuteDropsFailedConnection(t *testing.T) {
	var (
		ctx  = context.Background()
		d    = &fakeDialer{}
		pool = newTestPool(d)
	)

	_, err := pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.NoError(t, err)

	d.conns[0].execErr = errors.New("broken pipe")

	_, err = pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.Error(t, err)
	require.True(t, d.conns[0].closed)

	// next call dials fresh
	_, err = pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.NoError(t, err)
	require.Equal(t, 2, d.dials)
}

// overlapConn flags any two Execute calls running at the same time.
type overlapConn struct {
	inFlight atomic.Bool
	overlap  atomic.Bool
}

func (c *overlapConn) Execute(command string) (string, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.overlap.Store(true)
	}
	time.Sleep(time.Millisecond)
	c.inFlight.Store(false)
	return "ok", nil
}

func (c *overlapConn) Close() error { return nil }

func TestExecuteSerializesPerInstance(t *testing.T) {
	var (
		ctx  = context.Background()
		conn = &overlapConn{}
	)
	pool := NewPool(slog.New(slog.DiscardHandler), func(endpoint string, credential string) (Conn, error) {
		return conn, nil
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 5 {
				_, err := pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
				require.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	require.False(t, conn.overlap.Load())
}

func TestSlowDialDoesNotBlockOtherInstances(t *testing.T) {
	var (
		ctx     = context.Background()
		release = make(chan struct{})
	)
	pool := NewPool(slog.New(slog.DiscardHandler), func(endpoint string, credential string) (Conn, error) {
		if endpoint == "127.0.0.1:25575" {
			<-release
		}
		return &fakeConn{resp: "ok"}, nil
	})
	defer close(release)

	go func() {
		_, _ = pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	}()

	done := make(chan error, 1)
	go func() {
		_, err := pool.Execute(ctx, "ins-2", "list", "127.0.0.1:25576", "secret")
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("execute blocked behind another instance's dial")
	}
}

func TestCloseDropsConnection(t *testing.T) {
	var (
		ctx  = context.Background()
		d    = &fakeDialer{}
		pool = newTestPool(d)
	)

	_, err := pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.NoError(t, err)

	pool.Close("ins-1")
	require.True(t, d.conns[0].closed)

	// closing an unknown instance is a no-op
	pool.Close("ins-2")
}

func TestSweepClosesIdleConnections(t *testing.T) {
	var (
		ctx  = context.Background()
		d    = &fakeDialer{}
		pool = newTestPool(d)
	)
	pool.idleTimeout = 10 * time.Millisecond

	_, err := pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	pool.sweep()

	require.True(t, d.conns[0].closed)

	_, err = pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.NoError(t, err)
	require.Equal(t, 2, d.dials)
}

func TestSweepKeepsActiveConnections(t *testing.T) {
	var (
		ctx  = context.Background()
		d    = &fakeDialer{}
		pool = newTestPool(d)
	)

	_, err := pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.NoError(t, err)

	pool.sweep()

	require.False(t, d.conns[0].closed)
}

func TestShutdownClosesEverything(t *testing.T) {
	var (
		ctx  = context.Background()
		d    = &fakeDialer{}
		pool = newTestPool(d)
	)
	pool.Start()

	_, err := pool.Execute(ctx, "ins-1", "list", "127.0.0.1:25575", "secret")
	require.NoError(t, err)
	_, err = pool.Execute(ctx, "ins-2", "list", "127.0.0.1:25576", "secret")
	require.NoError(t, err)

	pool.Shutdown()
	// calling twice must not panic
	pool.Shutdown()

	require.True(t, d.conns[0].closed)
	require.True(t, d.conns[1].closed)
}
