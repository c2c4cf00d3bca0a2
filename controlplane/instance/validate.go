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

package instance

import (
	"context"
	"fmt"
	"regexp"

	"github.com/craftops/warden/controlplane/catalog"
	apierrs "github.com/craftops/warden/controlplane/errors"
)

// instance names double as container and volume names, so they have
// to be DNS-safe: 3-32 chars, lowercase alphanumeric and hyphens, no
// leading or trailing hyphen.
var nameRegexp = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{1,30})[a-z0-9]$`)

func ValidName(name string) bool {
	return nameRegexp.MatchString(name)
}

// validateNewInstance checks everything that does not need the port
// registry: name shape and version identifiers. runs before any side
// effect.
func validateNewInstance(ctx context.Context, cat catalog.Catalog, req NewInstance) error {
	if !ValidName(req.Name) {
		return apierrs.ErrInvalidInstanceName
	}

	known, err := cat.KnownEngineVersion(ctx, req.EngineVersion)
	if err != nil {
		return fmt.Errorf("engine version lookup: %w", err)
	}
	if !known {
		return apierrs.ErrUnknownEngineVersion
	}

	if req.ModLoaderVersion != "" {
		known, err := cat.KnownModLoaderVersion(ctx, req.ModLoaderVersion)
		if err != nil {
			return fmt.Errorf("mod loader version lookup: %w", err)
		}
		if !known {
			return apierrs.ErrUnknownLoaderVersion
		}
	}

	return nil
}
