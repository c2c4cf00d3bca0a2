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
	"time"
)

type Instance struct {
	ID               string
	Name             string
	EngineVersion    string
	ModLoaderVersion string
	MemoryMB         int
	MaxPlayers       int
	ServerPort       uint16
	RconPort         uint16
	VoicePort        *uint16
	BridgePort       *uint16
	State            State
	// RuntimeHandle is the container id assigned by the runtime.
	// nil until the first successful create.
	RuntimeHandle *string
	OwnerID       string
	RconPassword  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type State string

const (
	StateStopped  State = "STOPPED"
	StateStarting State = "STARTING"
	StateRunning  State = "RUNNING"
	StateStopping State = "STOPPING"
	StateError    State = "ERROR"
)

type PortKind string

const (
	PortKindServer PortKind = "server"
	PortKindRcon   PortKind = "rcon"
	PortKindVoice  PortKind = "voice"
	PortKindBridge PortKind = "bridge"
)

// NewInstance is the validated input of the create operation.
// SharedWith lists subject ids that receive an access grant in the
// same transaction that inserts the instance row.
type NewInstance struct {
	Name             string
	EngineVersion    string
	ModLoaderVersion string
	MemoryMB         int
	MaxPlayers       int
	ServerPort       uint16
	RconPort         uint16
	VoicePort        *uint16
	BridgePort       *uint16
	SharedWith       []string
}

// Patch carries the fields of a sparse update. Name is present only
// so the service can reject it; it is never written.
type Patch struct {
	Name             *string
	EngineVersion    *string
	ModLoaderVersion *string
	MemoryMB         *int
	MaxPlayers       *int
}

func (p Patch) Empty() bool {
	return p.EngineVersion == nil &&
		p.ModLoaderVersion == nil &&
		p.MemoryMB == nil &&
		p.MaxPlayers == nil
}

// TransitionResult reports the outcome of a lifecycle operation.
// Applied is false when the runtime reported the workload already in
// the requested state, which is unsuccessful but not an error.
type TransitionResult struct {
	Instance Instance
	Applied  bool
	Reason   string
}
