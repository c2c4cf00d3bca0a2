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
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type pollCall struct {
	tail  int
	since time.Time
}

func TestPollFetchesSinceCutoffAfterPriming(t *testing.T) {
	var (
		ctx   = context.Background()
		calls []pollCall
		sent  [][]string
	)

	fetch := func(_ context.Context, _ string, tail int, since time.Time) (string, error) {
		calls = append(calls, pollCall{tail: tail, since: since})
		if since.IsZero() {
			// tail-limited view of a server that already logged more
			// than the window holds
			return "line-3\nline-4\n", nil
		}
		return "line-5\nline-6\n", nil
	}
	broadcast := func(_ string, lines []string, _ time.Time) {
		sent = append(sent, lines)
	}

	p := newPoller(slog.New(slog.DiscardHandler), "ins-1", "c0ffee", time.Second, 2, fetch, broadcast)

	p.poll(ctx)
	p.poll(ctx)

	require.Equal(t, [][]string{
		{"line-3", "line-4"},
		{"line-5", "line-6"},
	}, sent)

	require.Len(t, calls, 2)
	require.Equal(t, 2, calls[0].tail)
	require.True(t, calls[0].since.IsZero())
	require.Equal(t, 0, calls[1].tail)
	require.False(t, calls[1].since.IsZero())
}

func TestPollKeepsCutoffOnFetchFailure(t *testing.T) {
	var (
		ctx   = context.Background()
		fail  bool
		calls []pollCall
	)

	fetch := func(_ context.Context, _ string, tail int, since time.Time) (string, error) {
		calls = append(calls, pollCall{tail: tail, since: since})
		if fail {
			return "", errors.New("container not running")
		}
		return "", nil
	}

	p := newPoller(slog.New(slog.DiscardHandler), "ins-1", "c0ffee", time.Second, 500, fetch,
		func(string, []string, time.Time) {},
	)

	p.poll(ctx)
	cutoff := p.lastPoll
	require.False(t, cutoff.IsZero())

	fail = true
	p.poll(ctx)
	require.Equal(t, cutoff, p.lastPoll)

	// the retry covers the window the failed poll left behind
	fail = false
	p.poll(ctx)
	require.Equal(t, cutoff, calls[2].since)
}

func TestPollSkipsBroadcastWithoutNewLines(t *testing.T) {
	var (
		ctx    = context.Background()
		bcasts int
	)

	p := newPoller(slog.New(slog.DiscardHandler), "ins-1", "c0ffee", time.Second, 500,
		func(context.Context, string, int, time.Time) (string, error) {
			return "", nil
		},
		func(string, []string, time.Time) {
			bcasts++
		},
	)

	p.poll(ctx)
	p.poll(ctx)

	require.Zero(t, bcasts)
}
