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

package instance_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/craftops/warden/controlplane/instance"
	"github.com/craftops/warden/internal/mock"
	"github.com/craftops/warden/internal/ptr"
	"github.com/craftops/warden/test/fixture"
	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const stopGrace = 30 * time.Second

type serviceMocks struct {
	repo    *mock.MockInstanceRepository
	adapter *mock.MockRuntimeAdapter
	catalog *mock.MockCatalog
	access  *mock.MockAccessEvaluator
	pool    *mock.MockCommandPool
}

func newService(t *testing.T) (instance.Service, serviceMocks) {
	m := serviceMocks{
		repo:    mock.NewMockInstanceRepository(t),
		adapter: mock.NewMockRuntimeAdapter(t),
		catalog: mock.NewMockCatalog(t),
		access:  mock.NewMockAccessEvaluator(t),
		pool:    mock.NewMockCommandPool(t),
	}
	svc := instance.NewService(
		slog.New(slog.DiscardHandler),
		m.repo,
		m.adapter,
		m.catalog,
		m.access,
		m.pool,
		"127.0.0.1",
		stopGrace,
	)
	return svc, m
}

func expectKnownVersions(m serviceMocks) {
	m.catalog.EXPECT().
		KnownEngineVersion(mocky.Anything, fixture.EngineVersion).
		Return(true, nil)
	m.catalog.EXPECT().
		KnownModLoaderVersion(mocky.Anything, fixture.LoaderVersion).
		Return(true, nil)
}

func TestCreateInstance(t *testing.T) {
	tests := []struct {
		name     string
		req      instance.NewInstance
		expected instance.Instance
		err      error
		prep     func(m serviceMocks)
	}{
		{
			name:     "works",
			req:      fixture.NewInstance(),
			expected: fixture.Instance(),
			prep: func(m serviceMocks) {
				expectKnownVersions(m)
				m.repo.EXPECT().
					GetInstanceByName(mocky.Anything, fixture.NewInstance().Name).
					Return(instance.Instance{}, apierrs.ErrInstanceNotFound)
				m.repo.EXPECT().
					UsedPorts(mocky.Anything).
					Return(instance.NewUsedPorts(), nil)
				m.adapter.EXPECT().
					CreateWorkload(mocky.Anything, mocky.Anything).
					Return("c0ffee", nil)
				m.repo.EXPECT().
					CreateInstance(mocky.Anything, mocky.Anything, mocky.Anything).
					Return(fixture.Instance(), nil)
				m.repo.EXPECT().
					GetInstanceByID(mocky.Anything, fixture.InstanceID).
					Return(fixture.Instance(), nil)
			},
		},
		{
			name: "invalid name",
			req: fixture.NewInstance(func(n *instance.NewInstance) {
				n.Name = "-Bad-Name-"
			}),
			err:  apierrs.ErrInvalidInstanceName,
			prep: func(m serviceMocks) {},
		},
		{
			name: "unknown engine version",
			req:  fixture.NewInstance(),
			err:  apierrs.ErrUnknownEngineVersion,
			prep: func(m serviceMocks) {
				m.catalog.EXPECT().
					KnownEngineVersion(mocky.Anything, fixture.EngineVersion).
					Return(false, nil)
			},
		},
		{
			name: "unknown mod loader version",
			req:  fixture.NewInstance(),
			err:  apierrs.ErrUnknownLoaderVersion,
			prep: func(m serviceMocks) {
				m.catalog.EXPECT().
					KnownEngineVersion(mocky.Anything, fixture.EngineVersion).
					Return(true, nil)
				m.catalog.EXPECT().
					KnownModLoaderVersion(mocky.Anything, fixture.LoaderVersion).
					Return(false, nil)
			},
		},
		{
			name: "name already taken does not touch the runtime",
			req:  fixture.NewInstance(),
			err:  apierrs.ErrInstanceNameTaken,
			prep: func(m serviceMocks) {
				expectKnownVersions(m)
				m.repo.EXPECT().
					GetInstanceByName(mocky.Anything, fixture.NewInstance().Name).
					Return(fixture.Instance(), nil)
			},
		},
		{
			name: "server port conflict",
			req:  fixture.NewInstance(),
			err:  apierrs.PortConflict("server", 25565),
			prep: func(m serviceMocks) {
				expectKnownVersions(m)
				m.repo.EXPECT().
					GetInstanceByName(mocky.Anything, fixture.NewInstance().Name).
					Return(instance.Instance{}, apierrs.ErrInstanceNotFound)
				used := instance.NewUsedPorts()
				used.Claim(fixture.Instance())
				m.repo.EXPECT().
					UsedPorts(mocky.Anything).
					Return(used, nil)
			},
		},
		{
			name: "voice port collision is allowed",
			req: fixture.NewInstance(func(n *instance.NewInstance) {
				n.ServerPort = 25566
				n.RconPort = 25576
			}),
			expected: fixture.Instance(),
			prep: func(m serviceMocks) {
				expectKnownVersions(m)
				m.repo.EXPECT().
					GetInstanceByName(mocky.Anything, fixture.NewInstance().Name).
					Return(instance.Instance{}, apierrs.ErrInstanceNotFound)
				used := instance.NewUsedPorts()
				used.Claim(fixture.Instance())
				m.repo.EXPECT().
					UsedPorts(mocky.Anything).
					Return(used, nil)
				m.adapter.EXPECT().
					CreateWorkload(mocky.Anything, mocky.Anything).
					Return("c0ffee", nil)
				m.repo.EXPECT().
					CreateInstance(mocky.Anything, mocky.Anything, mocky.Anything).
					Return(fixture.Instance(), nil)
				m.repo.EXPECT().
					GetInstanceByID(mocky.Anything, fixture.InstanceID).
					Return(fixture.Instance(), nil)
			},
		},
		{
			name: "workload deleted again when persisting fails",
			req:  fixture.NewInstance(),
			err:  apierrs.ErrInstanceNameTaken,
			prep: func(m serviceMocks) {
				expectKnownVersions(m)
				m.repo.EXPECT().
					GetInstanceByName(mocky.Anything, fixture.NewInstance().Name).
					Return(instance.Instance{}, apierrs.ErrInstanceNotFound)
				m.repo.EXPECT().
					UsedPorts(mocky.Anything).
					Return(instance.NewUsedPorts(), nil)
				m.adapter.EXPECT().
					CreateWorkload(mocky.Anything, mocky.Anything).
					Return("c0ffee", nil)
				m.repo.EXPECT().
					CreateInstance(mocky.Anything, mocky.Anything, mocky.Anything).
					Return(instance.Instance{}, apierrs.ErrInstanceNameTaken)
				m.adapter.EXPECT().
					Delete(mocky.Anything, "c0ffee", true).
					Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newService(t)

			tt.prep(m)

			actual, err := svc.CreateInstance(ctx, fixture.OwnerID, tt.req)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestCreateInstancePassesGrantsAndPassword(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	req := fixture.NewInstance(func(n *instance.NewInstance) {
		n.SharedWith = []string{"friend-1", "friend-2"}
	})

	expectKnownVersions(m)
	m.repo.EXPECT().
		GetInstanceByName(mocky.Anything, req.Name).
		Return(instance.Instance{}, apierrs.ErrInstanceNotFound)
	m.repo.EXPECT().
		UsedPorts(mocky.Anything).
		Return(instance.NewUsedPorts(), nil)
	m.adapter.EXPECT().
		CreateWorkload(mocky.Anything, mocky.Anything).
		Return("c0ffee", nil)

	var persisted instance.Instance
	m.repo.EXPECT().
		CreateInstance(mocky.Anything, mocky.Anything, []string{"friend-1", "friend-2"}).
		Run(func(ctx context.Context, ins instance.Instance, grantedTo []string) {
			persisted = ins
		}).
		Return(fixture.Instance(), nil)
	m.repo.EXPECT().
		GetInstanceByID(mocky.Anything, fixture.InstanceID).
		Return(fixture.Instance(), nil)

	_, err := svc.CreateInstance(ctx, fixture.OwnerID, req)
	require.NoError(t, err)

	require.NotEmpty(t, persisted.ID)
	require.Len(t, persisted.RconPassword, 32)
	require.Equal(t, fixture.OwnerID, persisted.OwnerID)
	require.Equal(t, instance.StateStopped, persisted.State)
	require.Equal(t, ptr.Pointer("c0ffee"), persisted.RuntimeHandle)
}

func TestGetInstance(t *testing.T) {
	t.Run("denied for stranger", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, fixture.InstanceID).
			Return(fixture.Instance(), nil)
		m.access.EXPECT().
			CanAccess(mocky.Anything, fixture.Stranger(), fixture.InstanceID).
			Return(false, nil)

		_, err := svc.GetInstance(ctx, fixture.Stranger(), fixture.InstanceID)
		require.ErrorIs(t, err, apierrs.ErrPermissionDenied)
	})

	t.Run("missing instance surfaces not found before access", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, "missing").
			Return(instance.Instance{}, apierrs.ErrInstanceNotFound)

		_, err := svc.GetInstance(ctx, fixture.Owner(), "missing")
		require.ErrorIs(t, err, apierrs.ErrInstanceNotFound)
	})

	t.Run("granted subject passes", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, fixture.InstanceID).
			Return(fixture.Instance(), nil)
		m.access.EXPECT().
			CanAccess(mocky.Anything, fixture.Stranger(), fixture.InstanceID).
			Return(true, nil)

		actual, err := svc.GetInstance(ctx, fixture.Stranger(), fixture.InstanceID)
		require.NoError(t, err)
		require.Equal(t, fixture.Instance(), actual)
	})
}

func TestListInstances(t *testing.T) {
	t.Run("admin sees everything", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		all := []instance.Instance{fixture.Instance()}
		m.repo.EXPECT().
			ListInstances(mocky.Anything).
			Return(all, nil)

		actual, err := svc.ListInstances(ctx, fixture.Admin())
		require.NoError(t, err)
		require.Equal(t, all, actual)
	})

	t.Run("restricted subject sees owned and granted", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		accessible := []instance.Instance{fixture.Instance()}
		m.repo.EXPECT().
			ListAccessibleInstances(mocky.Anything, fixture.OwnerID).
			Return(accessible, nil)

		actual, err := svc.ListInstances(ctx, fixture.Owner())
		require.NoError(t, err)
		require.Equal(t, accessible, actual)
	})
}

func TestUpdateInstance(t *testing.T) {
	tests := []struct {
		name     string
		patch    instance.Patch
		expected instance.Instance
		err      error
		prep     func(m serviceMocks)
	}{
		{
			name: "works",
			patch: instance.Patch{
				MemoryMB: ptr.Pointer(8192),
			},
			expected: fixture.Instance(func(i *instance.Instance) {
				i.MemoryMB = 8192
			}),
			prep: func(m serviceMocks) {
				m.repo.EXPECT().
					GetInstanceByID(mocky.Anything, fixture.InstanceID).
					Return(fixture.Instance(), nil)
				m.repo.EXPECT().
					UpdateInstance(mocky.Anything, fixture.InstanceID, instance.Patch{
						MemoryMB: ptr.Pointer(8192),
					}).
					Return(fixture.Instance(func(i *instance.Instance) {
						i.MemoryMB = 8192
					}), nil)
			},
		},
		{
			name: "name change rejected even with identical value",
			patch: instance.Patch{
				Name: ptr.Pointer(fixture.Instance().Name),
			},
			err: apierrs.ErrNameImmutable,
			prep: func(m serviceMocks) {
				m.repo.EXPECT().
					GetInstanceByID(mocky.Anything, fixture.InstanceID).
					Return(fixture.Instance(), nil)
			},
		},
		{
			name:     "empty patch is a no-op",
			patch:    instance.Patch{},
			expected: fixture.Instance(),
			prep: func(m serviceMocks) {
				m.repo.EXPECT().
					GetInstanceByID(mocky.Anything, fixture.InstanceID).
					Return(fixture.Instance(), nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newService(t)

			tt.prep(m)

			actual, err := svc.UpdateInstance(ctx, fixture.Owner(), fixture.InstanceID, tt.patch)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestUpdateInstanceRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.repo.EXPECT().
		GetInstanceByID(mocky.Anything, fixture.InstanceID).
		Return(fixture.Instance(), nil)

	_, err := svc.UpdateInstance(ctx, fixture.Stranger(), fixture.InstanceID, instance.Patch{
		MemoryMB: ptr.Pointer(8192),
	})
	require.ErrorIs(t, err, apierrs.ErrPermissionDenied)
}

func TestDeleteInstance(t *testing.T) {
	t.Run("works", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, fixture.InstanceID).
			Return(fixture.Instance(), nil)
		m.adapter.EXPECT().
			Delete(mocky.Anything, "c0ffee", true).
			Return(nil)
		m.repo.EXPECT().
			DeleteInstance(mocky.Anything, fixture.InstanceID).
			Return(nil)
		m.pool.EXPECT().
			Close(fixture.InstanceID)

		require.NoError(t, svc.DeleteInstance(ctx, fixture.Owner(), fixture.InstanceID))
	})

	t.Run("record removed even when the workload cannot be deleted", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, fixture.InstanceID).
			Return(fixture.Instance(), nil)
		m.adapter.EXPECT().
			Delete(mocky.Anything, "c0ffee", true).
			Return(errors.New("runtime unreachable"))
		m.repo.EXPECT().
			DeleteInstance(mocky.Anything, fixture.InstanceID).
			Return(nil)
		m.pool.EXPECT().
			Close(fixture.InstanceID)

		require.NoError(t, svc.DeleteInstance(ctx, fixture.Owner(), fixture.InstanceID))
	})

	t.Run("denied for non-owner", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, fixture.InstanceID).
			Return(fixture.Instance(), nil)

		err := svc.DeleteInstance(ctx, fixture.Stranger(), fixture.InstanceID)
		require.ErrorIs(t, err, apierrs.ErrPermissionDenied)
	})
}

func TestStartInstance(t *testing.T) {
	tests := []struct {
		name    string
		applied bool
		reason  string
		err     error
		prep    func(m serviceMocks)
	}{
		{
			name:    "works",
			applied: true,
			prep: func(m serviceMocks) {
				m.repo.EXPECT().
					GetInstanceByID(mocky.Anything, fixture.InstanceID).
					Return(fixture.Instance(), nil)
				m.access.EXPECT().
					CanAccess(mocky.Anything, fixture.Owner(), fixture.InstanceID).
					Return(true, nil)
				m.repo.EXPECT().
					UpdateInstanceState(mocky.Anything, fixture.InstanceID, instance.StateStarting).
					Return(nil)
				m.adapter.EXPECT().
					Start(mocky.Anything, "c0ffee").
					Return(true, nil)
				m.repo.EXPECT().
					UpdateInstanceState(mocky.Anything, fixture.InstanceID, instance.StateRunning).
					Return(nil)
			},
		},
		{
			name:    "already running is unsuccessful but not an error",
			applied: false,
			reason:  "already running",
			prep: func(m serviceMocks) {
				m.repo.EXPECT().
					GetInstanceByID(mocky.Anything, fixture.InstanceID).
					Return(fixture.Instance(), nil)
				m.access.EXPECT().
					CanAccess(mocky.Anything, fixture.Owner(), fixture.InstanceID).
					Return(true, nil)
				m.repo.EXPECT().
					UpdateInstanceState(mocky.Anything, fixture.InstanceID, instance.StateStarting).
					Return(nil)
				m.adapter.EXPECT().
					Start(mocky.Anything, "c0ffee").
					Return(false, nil)
				m.repo.EXPECT().
					UpdateInstanceState(mocky.Anything, fixture.InstanceID, instance.StateRunning).
					Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newService(t)

			tt.prep(m)

			res, err := svc.StartInstance(ctx, fixture.Owner(), fixture.InstanceID)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.applied, res.Applied)
			require.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestStartInstanceRuntimeFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.repo.EXPECT().
		GetInstanceByID(mocky.Anything, fixture.InstanceID).
		Return(fixture.Instance(), nil)
	m.access.EXPECT().
		CanAccess(mocky.Anything, fixture.Owner(), fixture.InstanceID).
		Return(true, nil)
	m.repo.EXPECT().
		UpdateInstanceState(mocky.Anything, fixture.InstanceID, instance.StateStarting).
		Return(nil)
	m.adapter.EXPECT().
		Start(mocky.Anything, "c0ffee").
		Return(false, errors.New("runtime unreachable"))
	m.repo.EXPECT().
		UpdateInstanceState(mocky.Anything, fixture.InstanceID, instance.StateError).
		Return(nil)

	_, err := svc.StartInstance(ctx, fixture.Owner(), fixture.InstanceID)
	require.Error(t, err)
}

func TestStopInstanceNotRunning(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.repo.EXPECT().
		GetInstanceByID(mocky.Anything, fixture.InstanceID).
		Return(fixture.Instance(), nil)
	m.access.EXPECT().
		CanAccess(mocky.Anything, fixture.Owner(), fixture.InstanceID).
		Return(true, nil)
	m.repo.EXPECT().
		UpdateInstanceState(mocky.Anything, fixture.InstanceID, instance.StateStopping).
		Return(nil)
	m.adapter.EXPECT().
		Stop(mocky.Anything, "c0ffee", stopGrace).
		Return(false, nil)
	m.repo.EXPECT().
		UpdateInstanceState(mocky.Anything, fixture.InstanceID, instance.StateStopped).
		Return(nil)

	res, err := svc.StopInstance(ctx, fixture.Owner(), fixture.InstanceID)
	require.NoError(t, err)
	require.False(t, res.Applied)
	require.Equal(t, "not running", res.Reason)
}

func TestTransitionWithoutWorkload(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.repo.EXPECT().
		GetInstanceByID(mocky.Anything, fixture.InstanceID).
		Return(fixture.Instance(func(i *instance.Instance) {
			i.RuntimeHandle = nil
		}), nil)
	m.access.EXPECT().
		CanAccess(mocky.Anything, fixture.Owner(), fixture.InstanceID).
		Return(true, nil)

	_, err := svc.StartInstance(ctx, fixture.Owner(), fixture.InstanceID)
	require.ErrorIs(t, err, apierrs.ErrInstanceNotFound)
}

func TestCommandCredential(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.repo.EXPECT().
		GetInstanceByID(mocky.Anything, fixture.InstanceID).
		Return(fixture.Instance(), nil)

	cred, err := svc.CommandCredential(ctx, fixture.InstanceID)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:25575", cred.Endpoint)
	require.Equal(t, fixture.Instance().RconPassword, cred.Password)
}

func TestGrantAccess(t *testing.T) {
	t.Run("owner can grant", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, fixture.InstanceID).
			Return(fixture.Instance(), nil)
		m.repo.EXPECT().
			CreateGrant(mocky.Anything, "friend-1", fixture.InstanceID).
			Return(nil)

		require.NoError(t, svc.GrantAccess(ctx, fixture.Owner(), fixture.InstanceID, "friend-1"))
	})

	t.Run("non-owner cannot grant", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, fixture.InstanceID).
			Return(fixture.Instance(), nil)

		err := svc.GrantAccess(ctx, fixture.Stranger(), fixture.InstanceID, "friend-1")
		require.ErrorIs(t, err, apierrs.ErrPermissionDenied)
	})

	t.Run("duplicate grant surfaces conflict", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newService(t)

		m.repo.EXPECT().
			GetInstanceByID(mocky.Anything, fixture.InstanceID).
			Return(fixture.Instance(), nil)
		m.repo.EXPECT().
			CreateGrant(mocky.Anything, "friend-1", fixture.InstanceID).
			Return(apierrs.ErrGrantExists)

		err := svc.GrantAccess(ctx, fixture.Owner(), fixture.InstanceID, "friend-1")
		require.ErrorIs(t, err, apierrs.ErrGrantExists)
	})
}

func TestRevokeAccess(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.repo.EXPECT().
		GetInstanceByID(mocky.Anything, fixture.InstanceID).
		Return(fixture.Instance(), nil)
	m.repo.EXPECT().
		DeleteGrant(mocky.Anything, "friend-1", fixture.InstanceID).
		Return(apierrs.ErrGrantNotFound)

	err := svc.RevokeAccess(ctx, fixture.Owner(), fixture.InstanceID, "friend-1")
	require.ErrorIs(t, err, apierrs.ErrGrantNotFound)
}
