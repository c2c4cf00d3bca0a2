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
	apierrs "github.com/craftops/warden/controlplane/errors"
)

// UsedPorts holds the ports claimed across all instances, grouped by
// kind.
type UsedPorts struct {
	Server map[uint16]struct{}
	Rcon   map[uint16]struct{}
	Voice  map[uint16]struct{}
	Bridge map[uint16]struct{}
}

// Claim records the ports of one instance. voice ports are shared
// across instances, so claiming one never conflicts, but it is still
// tracked for visibility.
func (u *UsedPorts) Claim(ins Instance) {
	u.Server[ins.ServerPort] = struct{}{}
	u.Rcon[ins.RconPort] = struct{}{}
	if ins.VoicePort != nil {
		u.Voice[*ins.VoicePort] = struct{}{}
	}
	if ins.BridgePort != nil {
		u.Bridge[*ins.BridgePort] = struct{}{}
	}
}

func NewUsedPorts() UsedPorts {
	return UsedPorts{
		Server: make(map[uint16]struct{}),
		Rcon:   make(map[uint16]struct{}),
		Voice:  make(map[uint16]struct{}),
		Bridge: make(map[uint16]struct{}),
	}
}

// validatePorts rejects requests whose server, rcon or bridge port is
// already claimed by an existing instance of the same kind. this is a
// pre-check only; the store's uniqueness constraints remain the final
// arbiter under concurrent creations.
func validatePorts(used UsedPorts, req NewInstance) error {
	if _, ok := used.Server[req.ServerPort]; ok {
		return apierrs.PortConflict(string(PortKindServer), req.ServerPort)
	}
	if _, ok := used.Rcon[req.RconPort]; ok {
		return apierrs.PortConflict(string(PortKindRcon), req.RconPort)
	}
	if req.BridgePort != nil {
		if _, ok := used.Bridge[*req.BridgePort]; ok {
			return apierrs.PortConflict(string(PortKindBridge), *req.BridgePort)
		}
	}
	// voice ports may be shared across instances
	return nil
}
