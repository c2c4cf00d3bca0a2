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

package fixture

import (
	"time"

	"github.com/craftops/warden/controlplane/authz"
	"github.com/craftops/warden/controlplane/instance"
	"github.com/craftops/warden/internal/ptr"
)

const (
	InstanceID    = "01990a2e-7b11-7c2f-b1a3-51e83c1fd2aa"
	OwnerID       = "owner-1"
	EngineVersion = "1.21.4"
	LoaderVersion = "54.1.0"
)

func Instance(mod ...func(i *instance.Instance)) instance.Instance {
	ins := instance.Instance{
		ID:               InstanceID,
		Name:             "survival-main",
		EngineVersion:    EngineVersion,
		ModLoaderVersion: LoaderVersion,
		MemoryMB:         4096,
		MaxPlayers:       20,
		ServerPort:       25565,
		RconPort:         25575,
		VoicePort:        ptr.Pointer(uint16(24454)),
		State:            instance.StateStopped,
		RuntimeHandle:    ptr.Pointer("c0ffee"),
		OwnerID:          OwnerID,
		RconPassword:     "fd1498d2e41c6e06fb9eaaf6faa3c0f2",
		CreatedAt:        time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC),
	}

	for _, fn := range mod {
		fn(&ins)
	}

	return ins
}

func NewInstance(mod ...func(n *instance.NewInstance)) instance.NewInstance {
	req := instance.NewInstance{
		Name:             "survival-main",
		EngineVersion:    EngineVersion,
		ModLoaderVersion: LoaderVersion,
		MemoryMB:         4096,
		MaxPlayers:       20,
		ServerPort:       25565,
		RconPort:         25575,
		VoicePort:        ptr.Pointer(uint16(24454)),
	}

	for _, fn := range mod {
		fn(&req)
	}

	return req
}

func Admin() authz.Subject {
	return authz.Subject{
		ID:   "admin-1",
		Role: authz.RoleAdmin,
	}
}

func Owner() authz.Subject {
	return authz.Subject{
		ID:   OwnerID,
		Role: authz.RoleUser,
	}
}

func Stranger() authz.Subject {
	return authz.Subject{
		ID:   "stranger-1",
		Role: authz.RoleUser,
	}
}
