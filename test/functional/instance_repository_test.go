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

package functional

import (
	"context"
	"testing"

	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/craftops/warden/controlplane/instance"
	"github.com/craftops/warden/internal/ptr"
	"github.com/craftops/warden/test"
	"github.com/craftops/warden/test/fixture"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetInstance(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	expected := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
	})

	created, err := pg.DB.CreateInstance(ctx, expected, []string{"friend-1"})
	require.NoError(t, err)

	require.Equal(t, expected.ID, created.ID)
	require.Equal(t, expected.Name, created.Name)
	require.Equal(t, expected.ServerPort, created.ServerPort)
	require.Equal(t, expected.VoicePort, created.VoicePort)
	require.Nil(t, created.BridgePort)
	require.Equal(t, instance.StateStopped, created.State)
	require.False(t, created.CreatedAt.IsZero())

	byID, err := pg.DB.GetInstanceByID(ctx, expected.ID)
	require.NoError(t, err)
	require.Equal(t, created, byID)

	byName, err := pg.DB.GetInstanceByName(ctx, expected.Name)
	require.NoError(t, err)
	require.Equal(t, created, byName)

	granted, err := pg.DB.HasGrant(ctx, "friend-1", expected.ID)
	require.NoError(t, err)
	require.True(t, granted)
}

func TestGetInstanceNotFound(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	_, err := pg.DB.GetInstanceByID(ctx, test.NewUUIDv7(t))
	require.ErrorIs(t, err, apierrs.ErrInstanceNotFound)
}

func TestCreateInstanceConflicts(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	first := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
		i.BridgePort = ptr.Pointer(uint16(19132))
	})
	pg.CreateInstance(t, &first, nil)

	tests := []struct {
		name string
		mod  func(i *instance.Instance)
		err  error
	}{
		{
			name: "duplicate name",
			mod: func(i *instance.Instance) {
				i.ServerPort = 25566
				i.RconPort = 25576
			},
			err: apierrs.ErrInstanceNameTaken,
		},
		{
			name: "duplicate server port",
			mod: func(i *instance.Instance) {
				i.Name = "other-name"
				i.RconPort = 25576
			},
			err: apierrs.PortConflict("server", 25565),
		},
		{
			name: "duplicate rcon port",
			mod: func(i *instance.Instance) {
				i.Name = "other-name"
				i.ServerPort = 25566
			},
			err: apierrs.PortConflict("rcon", 25575),
		},
		{
			name: "duplicate bridge port",
			mod: func(i *instance.Instance) {
				i.Name = "other-name"
				i.ServerPort = 25566
				i.RconPort = 25576
				i.BridgePort = ptr.Pointer(uint16(19132))
			},
			err: apierrs.PortConflict("bridge", 19132),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := fixture.Instance(func(i *instance.Instance) {
				i.ID = test.NewUUIDv7(t)
				tt.mod(i)
			})

			_, err := pg.DB.CreateInstance(ctx, ins, nil)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("duplicate voice port is allowed", func(t *testing.T) {
		ins := fixture.Instance(func(i *instance.Instance) {
			i.ID = test.NewUUIDv7(t)
			i.Name = "voice-twin"
			i.ServerPort = 25567
			i.RconPort = 25577
			i.BridgePort = nil
		})

		_, err := pg.DB.CreateInstance(ctx, ins, nil)
		require.NoError(t, err)
	})
}

func TestUpdateInstanceSparse(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	ins := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
	})
	pg.CreateInstance(t, &ins, nil)

	updated, err := pg.DB.UpdateInstance(ctx, ins.ID, instance.Patch{
		MemoryMB: ptr.Pointer(8192),
	})
	require.NoError(t, err)

	require.Equal(t, 8192, updated.MemoryMB)
	// untouched fields stay as they were
	require.Equal(t, ins.MaxPlayers, updated.MaxPlayers)
	require.Equal(t, ins.EngineVersion, updated.EngineVersion)
	require.False(t, updated.UpdatedAt.Before(ins.UpdatedAt))
}

func TestUpdateInstanceState(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	ins := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
	})
	pg.CreateInstance(t, &ins, nil)

	require.NoError(t, pg.DB.UpdateInstanceState(ctx, ins.ID, instance.StateRunning))

	got, err := pg.DB.GetInstanceByID(ctx, ins.ID)
	require.NoError(t, err)
	require.Equal(t, instance.StateRunning, got.State)

	err = pg.DB.UpdateInstanceState(ctx, test.NewUUIDv7(t), instance.StateRunning)
	require.ErrorIs(t, err, apierrs.ErrInstanceNotFound)
}

func TestDeleteInstanceCascadesGrants(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	ins := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
	})
	pg.CreateInstance(t, &ins, []string{"friend-1"})

	require.NoError(t, pg.DB.DeleteInstance(ctx, ins.ID))

	_, err := pg.DB.GetInstanceByID(ctx, ins.ID)
	require.ErrorIs(t, err, apierrs.ErrInstanceNotFound)

	granted, err := pg.DB.HasGrant(ctx, "friend-1", ins.ID)
	require.NoError(t, err)
	require.False(t, granted)

	require.ErrorIs(t, pg.DB.DeleteInstance(ctx, ins.ID), apierrs.ErrInstanceNotFound)
}

func TestListAccessibleInstances(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	owned := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
		i.Name = "owned"
		i.OwnerID = "subject-a"
	})
	pg.CreateInstance(t, &owned, nil)

	granted := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
		i.Name = "granted"
		i.ServerPort = 25566
		i.RconPort = 25576
		i.OwnerID = "subject-b"
	})
	pg.CreateInstance(t, &granted, []string{"subject-a"})

	hidden := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
		i.Name = "hidden"
		i.ServerPort = 25567
		i.RconPort = 25577
		i.OwnerID = "subject-b"
	})
	pg.CreateInstance(t, &hidden, nil)

	list, err := pg.DB.ListAccessibleInstances(ctx, "subject-a")
	require.NoError(t, err)
	require.Len(t, list, 2)

	names := []string{list[0].Name, list[1].Name}
	require.ElementsMatch(t, []string{"owned", "granted"}, names)

	all, err := pg.DB.ListInstances(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestUsedPorts(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	ins := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
		i.BridgePort = ptr.Pointer(uint16(19132))
	})
	pg.CreateInstance(t, &ins, nil)

	used, err := pg.DB.UsedPorts(ctx)
	require.NoError(t, err)

	require.Contains(t, used.Server, uint16(25565))
	require.Contains(t, used.Rcon, uint16(25575))
	require.Contains(t, used.Voice, uint16(24454))
	require.Contains(t, used.Bridge, uint16(19132))
}

func TestGrants(t *testing.T) {
	var (
		ctx = context.Background()
		pg  = fixture.NewPostgres()
	)

	pg.Run(t, ctx)

	ins := fixture.Instance(func(i *instance.Instance) {
		i.ID = test.NewUUIDv7(t)
	})
	pg.CreateInstance(t, &ins, nil)

	require.NoError(t, pg.DB.CreateGrant(ctx, "friend-1", ins.ID))
	require.ErrorIs(t, pg.DB.CreateGrant(ctx, "friend-1", ins.ID), apierrs.ErrGrantExists)
	require.ErrorIs(t, pg.DB.CreateGrant(ctx, "friend-1", test.NewUUIDv7(t)), apierrs.ErrInstanceNotFound)

	owner, err := pg.DB.InstanceOwner(ctx, ins.ID)
	require.NoError(t, err)
	require.Equal(t, ins.OwnerID, owner)

	// missing instance yields the empty owner, not an error
	owner, err = pg.DB.InstanceOwner(ctx, test.NewUUIDv7(t))
	require.NoError(t, err)
	require.Empty(t, owner)

	require.NoError(t, pg.DB.DeleteGrant(ctx, "friend-1", ins.ID))
	require.ErrorIs(t, pg.DB.DeleteGrant(ctx, "friend-1", ins.ID), apierrs.ErrGrantNotFound)
}
