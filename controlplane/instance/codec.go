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

import "time"

// Transport is the instance representation that crosses the API
// boundary. the rcon password and the runtime handle stay internal.
type Transport struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	EngineVersion    string     `json:"engineVersion"`
	ModLoaderVersion string     `json:"modLoaderVersion,omitempty"`
	MemoryMB         int        `json:"memoryMb"`
	MaxPlayers       int        `json:"maxPlayers"`
	ServerPort       uint16     `json:"serverPort"`
	RconPort         uint16     `json:"rconPort"`
	VoicePort        *uint16    `json:"voiceChatPort,omitempty"`
	BridgePort       *uint16    `json:"bridgePort,omitempty"`
	State            string     `json:"state"`
	OwnerID          string     `json:"ownerId"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func ToTransport(ins Instance) Transport {
	return Transport{
		ID:               ins.ID,
		Name:             ins.Name,
		EngineVersion:    ins.EngineVersion,
		ModLoaderVersion: ins.ModLoaderVersion,
		MemoryMB:         ins.MemoryMB,
		MaxPlayers:       ins.MaxPlayers,
		ServerPort:       ins.ServerPort,
		RconPort:         ins.RconPort,
		VoicePort:        ins.VoicePort,
		BridgePort:       ins.BridgePort,
		State:            string(ins.State),
		OwnerID:          ins.OwnerID,
		CreatedAt:        ins.CreatedAt,
		UpdatedAt:        ins.UpdatedAt,
	}
}

type CreateRequest struct {
	Name             string   `json:"name"`
	EngineVersion    string   `json:"engineVersion"`
	ModLoaderVersion string   `json:"modLoaderVersion"`
	MemoryMB         int      `json:"memoryMb"`
	MaxPlayers       int      `json:"maxPlayers"`
	ServerPort       uint16   `json:"serverPort"`
	RconPort         uint16   `json:"rconPort"`
	VoicePort        *uint16  `json:"voiceChatPort"`
	BridgePort       *uint16  `json:"bridgePort"`
	SharedWith       []string `json:"sharedWith"`
}

func (r CreateRequest) toNewInstance() NewInstance {
	return NewInstance{
		Name:             r.Name,
		EngineVersion:    r.EngineVersion,
		ModLoaderVersion: r.ModLoaderVersion,
		MemoryMB:         r.MemoryMB,
		MaxPlayers:       r.MaxPlayers,
		ServerPort:       r.ServerPort,
		RconPort:         r.RconPort,
		VoicePort:        r.VoicePort,
		BridgePort:       r.BridgePort,
		SharedWith:       r.SharedWith,
	}
}

type UpdateRequest struct {
	Name             *string `json:"name"`
	EngineVersion    *string `json:"engineVersion"`
	ModLoaderVersion *string `json:"modLoaderVersion"`
	MemoryMB         *int    `json:"memoryMb"`
	MaxPlayers       *int    `json:"maxPlayers"`
}

func (r UpdateRequest) toPatch() Patch {
	return Patch{
		Name:             r.Name,
		EngineVersion:    r.EngineVersion,
		ModLoaderVersion: r.ModLoaderVersion,
		MemoryMB:         r.MemoryMB,
		MaxPlayers:       r.MaxPlayers,
	}
}

type TransitionResponse struct {
	Instance Transport `json:"instance"`
	Applied  bool      `json:"applied"`
	Reason   string    `json:"reason,omitempty"`
}
