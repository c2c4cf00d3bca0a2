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

// Package catalog answers whether an engine or mod loader version
// identifier is known. versions are looked up in remote manifests and
// cached for a fixed period, so the orchestrator can treat the checks
// as synchronous boolean oracles.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type Catalog interface {
	KnownEngineVersion(ctx context.Context, id string) (bool, error)
	KnownModLoaderVersion(ctx context.Context, id string) (bool, error)
}

type manifest struct {
	Versions []struct {
		ID string `json:"id"`
	} `json:"versions"`
}

type cacheEntry struct {
	versions  map[string]struct{}
	fetchedAt time.Time
}

type HTTPCatalog struct {
	client     *retryablehttp.Client
	engineURL  string
	loaderURL  string
	ttl        time.Duration
	mu         sync.Mutex
	engine     cacheEntry
	loader     cacheEntry
}

func NewHTTPCatalog(engineManifestURL string, loaderManifestURL string, ttl time.Duration) *HTTPCatalog {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	return &HTTPCatalog{
		client:    client,
		engineURL: engineManifestURL,
		loaderURL: loaderManifestURL,
		ttl:       ttl,
	}
}

func (c *HTTPCatalog) KnownEngineVersion(ctx context.Context, id string) (bool, error) {
	return c.known(ctx, &c.engine, c.engineURL, id)
}

func (c *HTTPCatalog) KnownModLoaderVersion(ctx context.Context, id string) (bool, error) {
	return c.known(ctx, &c.loader, c.loaderURL, id)
}

func (c *HTTPCatalog) known(ctx context.Context, entry *cacheEntry, url string, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry.versions == nil || time.Since(entry.fetchedAt) > c.ttl {
		versions, err := c.fetch(ctx, url)
		if err != nil {
			// serve a stale cache over failing the caller, but only
			// if we have one
			if entry.versions == nil {
				return false, fmt.Errorf("fetch manifest: %w", err)
			}
		} else {
			entry.versions = versions
			entry.fetchedAt = time.Now()
		}
	}

	_, ok := entry.versions[id]
	return ok, nil
}

func (c *HTTPCatalog) fetch(ctx context.Context, url string) (map[string]struct{}, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	var m manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	versions := make(map[string]struct{}, len(m.Versions))
	for _, v := range m.Versions {
		versions[v.ID] = struct{}{}
	}

	return versions, nil
}
