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
	"context"
	"log/slog"
	"strings"
	"time"
)

// poller tails one instance's logs on a fixed interval and hands new
// lines to the hub for fan-out. the first poll primes with the recent
// tail window; every later poll fetches only lines newer than the
// previous one, so delivery keeps up even when output outgrows the
// window. each instance's poller is independent; one slow log fetch
// never stalls the polls of other instances.
type poller struct {
	logger     *slog.Logger
	instanceID string
	handle     string
	interval   time.Duration
	tailLines  int

	fetch     func(ctx context.Context, handle string, tailLines int, since time.Time) (string, error)
	broadcast func(instanceID string, lines []string, ts time.Time)

	lastPoll time.Time
	stop     chan struct{}
}

func newPoller(
	logger *slog.Logger,
	instanceID string,
	handle string,
	interval time.Duration,
	tailLines int,
	fetch func(ctx context.Context, handle string, tailLines int, since time.Time) (string, error),
	broadcast func(instanceID string, lines []string, ts time.Time),
) *poller {
	return &poller{
		logger:     logger,
		instanceID: instanceID,
		handle:     handle,
		interval:   interval,
		tailLines:  tailLines,
		fetch:      fetch,
		broadcast:  broadcast,
		stop:       make(chan struct{}),
	}
}

func (p *poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-p.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (p *poller) poll(ctx context.Context) {
	start := time.Now()

	// an unbounded fetch once a previous poll marks the cutoff
	tail := p.tailLines
	if !p.lastPoll.IsZero() {
		tail = 0
	}

	text, err := p.fetch(ctx, p.handle, tail, p.lastPoll)
	if err != nil {
		// a stopped or briefly unreachable container is routine, keep
		// polling until the last subscriber leaves
		p.logger.DebugContext(ctx, "log poll failed",
			"instance_id", p.instanceID,
			"err", err,
		)
		return
	}
	p.lastPoll = start

	lines := splitLines(text)
	if len(lines) == 0 {
		return
	}
	p.broadcast(p.instanceID, lines, time.Now())
}

func (p *poller) halt() {
	close(p.stop)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
