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
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftops/warden/controlplane/authz"
	"github.com/craftops/warden/controlplane/catalog"
	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/google/uuid"
)

// RuntimeAdapter is the slice of the container runtime the
// orchestrator drives.
type RuntimeAdapter interface {
	CreateWorkload(ctx context.Context, ins Instance) (string, error)
	Start(ctx context.Context, handle string) (bool, error)
	Stop(ctx context.Context, handle string, grace time.Duration) (bool, error)
	Restart(ctx context.Context, handle string, grace time.Duration) error
	Delete(ctx context.Context, handle string, deleteVolume bool) error
	Logs(ctx context.Context, handle string, tailLines int, since time.Time) (string, error)
}

// CommandPool is notified when an instance goes away so its cached
// command connection can be dropped.
type CommandPool interface {
	Close(instanceID string)
}

// Credential is what the live session hub needs to open a command
// connection to a running instance.
type Credential struct {
	Endpoint string
	Password string
}

type Service interface {
	CreateInstance(ctx context.Context, ownerID string, req NewInstance) (Instance, error)
	ListInstances(ctx context.Context, sub authz.Subject) ([]Instance, error)
	GetInstance(ctx context.Context, sub authz.Subject, id string) (Instance, error)
	GetInstanceByName(ctx context.Context, sub authz.Subject, name string) (Instance, error)
	UpdateInstance(ctx context.Context, sub authz.Subject, id string, patch Patch) (Instance, error)
	DeleteInstance(ctx context.Context, sub authz.Subject, id string) error
	StartInstance(ctx context.Context, sub authz.Subject, id string) (TransitionResult, error)
	StopInstance(ctx context.Context, sub authz.Subject, id string) (TransitionResult, error)
	RestartInstance(ctx context.Context, sub authz.Subject, id string) (TransitionResult, error)
	InstanceLogs(ctx context.Context, sub authz.Subject, id string, tailLines int) (string, error)
	HasAccess(ctx context.Context, sub authz.Subject, id string) (bool, error)
	// CommandCredential resolves the command-channel endpoint and
	// password for an instance. consumed by the live session hub after
	// it has done its own access checks.
	CommandCredential(ctx context.Context, id string) (Credential, error)
	GrantAccess(ctx context.Context, sub authz.Subject, id string, subjectID string) error
	RevokeAccess(ctx context.Context, sub authz.Subject, id string, subjectID string) error
}

type svc struct {
	logger   *slog.Logger
	repo     Repository
	adapter  RuntimeAdapter
	catalog  catalog.Catalog
	access   authz.AccessEvaluator
	pool     CommandPool
	rconHost string
	grace    time.Duration
}

func NewService(
	logger *slog.Logger,
	repo Repository,
	adapter RuntimeAdapter,
	cat catalog.Catalog,
	access authz.AccessEvaluator,
	pool CommandPool,
	rconHost string,
	stopGracePeriod time.Duration,
) Service {
	return &svc{
		logger:   logger.With("component", "instance-service"),
		repo:     repo,
		adapter:  adapter,
		catalog:  cat,
		access:   access,
		pool:     pool,
		rconHost: rconHost,
		grace:    stopGracePeriod,
	}
}

// CreateInstance validates the request, creates the container and its
// volume, then persists the instance row and requested grants in one
// transaction. when persisting fails after the workload was created,
// the workload is deleted again so no orphaned container survives
// without a matching record.
func (s *svc) CreateInstance(ctx context.Context, ownerID string, req NewInstance) (Instance, error) {
	if err := validateNewInstance(ctx, s.catalog, req); err != nil {
		return Instance{}, err
	}

	if _, err := s.repo.GetInstanceByName(ctx, req.Name); err == nil {
		return Instance{}, apierrs.ErrInstanceNameTaken
	} else if !errors.Is(err, apierrs.ErrInstanceNotFound) {
		return Instance{}, fmt.Errorf("name lookup: %w", err)
	}

	used, err := s.repo.UsedPorts(ctx)
	if err != nil {
		return Instance{}, fmt.Errorf("used ports: %w", err)
	}
	if err := validatePorts(used, req); err != nil {
		return Instance{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Instance{}, fmt.Errorf("instance id: %w", err)
	}

	password, err := randomPassword()
	if err != nil {
		return Instance{}, fmt.Errorf("rcon password: %w", err)
	}

	ins := Instance{
		ID:               id.String(),
		Name:             req.Name,
		EngineVersion:    req.EngineVersion,
		ModLoaderVersion: req.ModLoaderVersion,
		MemoryMB:         req.MemoryMB,
		MaxPlayers:       req.MaxPlayers,
		ServerPort:       req.ServerPort,
		RconPort:         req.RconPort,
		VoicePort:        req.VoicePort,
		BridgePort:       req.BridgePort,
		State:            StateStopped,
		OwnerID:          ownerID,
		RconPassword:     password,
	}

	handle, err := s.adapter.CreateWorkload(ctx, ins)
	if err != nil {
		return Instance{}, fmt.Errorf("create workload: %w", err)
	}
	ins.RuntimeHandle = &handle

	created, err := s.repo.CreateInstance(ctx, ins, req.SharedWith)
	if err != nil {
		// the workload exists but the record does not. delete the
		// workload again, best-effort, before surfacing the error.
		if derr := s.adapter.Delete(ctx, handle, true); derr != nil {
			s.logger.ErrorContext(ctx, "failed to clean up workload after create failure",
				"instance", req.Name,
				"container_id", handle,
				"err", derr,
			)
		}
		return Instance{}, err
	}

	// re-read so the caller sees exactly what was committed, not an
	// in-memory echo that a concurrent update could have skewed
	committed, err := s.repo.GetInstanceByID(ctx, created.ID)
	if err != nil {
		return Instance{}, fmt.Errorf("read back instance: %w", err)
	}

	s.logger.InfoContext(ctx, "created instance",
		"instance_id", committed.ID,
		"name", committed.Name,
		"owner_id", ownerID,
	)

	return committed, nil
}

func (s *svc) ListInstances(ctx context.Context, sub authz.Subject) ([]Instance, error) {
	if sub.Role == authz.RoleAdmin {
		return s.repo.ListInstances(ctx)
	}
	return s.repo.ListAccessibleInstances(ctx, sub.ID)
}

func (s *svc) GetInstance(ctx context.Context, sub authz.Subject, id string) (Instance, error) {
	return s.authorizedInstance(ctx, sub, id)
}

func (s *svc) GetInstanceByName(ctx context.Context, sub authz.Subject, name string) (Instance, error) {
	ins, err := s.repo.GetInstanceByName(ctx, name)
	if err != nil {
		return Instance{}, err
	}
	return s.authorizedInstance(ctx, sub, ins.ID)
}

// UpdateInstance applies a sparse patch of configuration fields. the
// name is identity and rejected unconditionally, even when the value
// is identical. an empty patch is a no-op returning the current row.
func (s *svc) UpdateInstance(ctx context.Context, sub authz.Subject, id string, patch Patch) (Instance, error) {
	ins, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		return Instance{}, err
	}

	if err := s.requireOwner(sub, ins); err != nil {
		return Instance{}, err
	}

	if patch.Name != nil {
		return Instance{}, apierrs.ErrNameImmutable
	}

	if patch.Empty() {
		return ins, nil
	}

	updated, err := s.repo.UpdateInstance(ctx, id, patch)
	if err != nil {
		return Instance{}, fmt.Errorf("update instance: %w", err)
	}

	return updated, nil
}

// DeleteInstance removes the workload best-effort and the record
// unconditionally. an unreachable or already-gone container must not
// block cleanup.
func (s *svc) DeleteInstance(ctx context.Context, sub authz.Subject, id string) error {
	ins, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.requireOwner(sub, ins); err != nil {
		return err
	}

	if ins.RuntimeHandle != nil {
		if err := s.adapter.Delete(ctx, *ins.RuntimeHandle, true); err != nil {
			s.logger.WarnContext(ctx, "failed to delete workload, removing record anyway",
				"instance_id", id,
				"container_id", *ins.RuntimeHandle,
				"err", err,
			)
		}
	}

	if err := s.repo.DeleteInstance(ctx, id); err != nil {
		return fmt.Errorf("delete instance: %w", err)
	}

	s.pool.Close(id)

	s.logger.InfoContext(ctx, "deleted instance", "instance_id", id, "name", ins.Name)
	return nil
}

func (s *svc) StartInstance(ctx context.Context, sub authz.Subject, id string) (TransitionResult, error) {
	return s.transition(ctx, sub, id, StateStarting, func(ctx context.Context, handle string) (bool, State, string, error) {
		started, err := s.adapter.Start(ctx, handle)
		if err != nil {
			return false, StateError, "", err
		}
		if !started {
			return false, StateRunning, "already running", nil
		}
		return true, StateRunning, "", nil
	})
}

func (s *svc) StopInstance(ctx context.Context, sub authz.Subject, id string) (TransitionResult, error) {
	return s.transition(ctx, sub, id, StateStopping, func(ctx context.Context, handle string) (bool, State, string, error) {
		stopped, err := s.adapter.Stop(ctx, handle, s.grace)
		if err != nil {
			return false, StateError, "", err
		}
		if !stopped {
			return false, StateStopped, "not running", nil
		}
		return true, StateStopped, "", nil
	})
}

func (s *svc) RestartInstance(ctx context.Context, sub authz.Subject, id string) (TransitionResult, error) {
	return s.transition(ctx, sub, id, StateStarting, func(ctx context.Context, handle string) (bool, State, string, error) {
		if err := s.adapter.Restart(ctx, handle, s.grace); err != nil {
			return false, StateError, "", err
		}
		return true, StateRunning, "", nil
	})
}

func (s *svc) InstanceLogs(ctx context.Context, sub authz.Subject, id string, tailLines int) (string, error) {
	ins, err := s.authorizedInstance(ctx, sub, id)
	if err != nil {
		return "", err
	}
	if ins.RuntimeHandle == nil {
		return "", nil
	}
	return s.adapter.Logs(ctx, *ins.RuntimeHandle, tailLines, time.Time{})
}

func (s *svc) HasAccess(ctx context.Context, sub authz.Subject, id string) (bool, error) {
	return s.access.CanAccess(ctx, sub, id)
}

func (s *svc) CommandCredential(ctx context.Context, id string) (Credential, error) {
	ins, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		return Credential{}, err
	}
	return Credential{
		Endpoint: fmt.Sprintf("%s:%d", s.rconHost, ins.RconPort),
		Password: ins.RconPassword,
	}, nil
}

func (s *svc) GrantAccess(ctx context.Context, sub authz.Subject, id string, subjectID string) error {
	ins, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOwner(sub, ins); err != nil {
		return err
	}
	return s.repo.CreateGrant(ctx, subjectID, id)
}

func (s *svc) RevokeAccess(ctx context.Context, sub authz.Subject, id string, subjectID string) error {
	ins, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOwner(sub, ins); err != nil {
		return err
	}
	return s.repo.DeleteGrant(ctx, subjectID, id)
}

// transition runs one lifecycle operation: access check, optimistic
// state, the adapter call, and the final persisted state. adapter
// reported "already in requested state" comes back as an unsuccessful
// result, not an error.
func (s *svc) transition(
	ctx context.Context,
	sub authz.Subject,
	id string,
	optimistic State,
	op func(ctx context.Context, handle string) (bool, State, string, error),
) (TransitionResult, error) {
	ins, err := s.authorizedInstance(ctx, sub, id)
	if err != nil {
		return TransitionResult{}, err
	}

	if ins.RuntimeHandle == nil {
		return TransitionResult{}, apierrs.ErrInstanceNotFound
	}

	if err := s.repo.UpdateInstanceState(ctx, id, optimistic); err != nil {
		return TransitionResult{}, fmt.Errorf("set %s state: %w", optimistic, err)
	}

	applied, final, reason, opErr := op(ctx, *ins.RuntimeHandle)

	if err := s.repo.UpdateInstanceState(ctx, id, final); err != nil {
		return TransitionResult{}, fmt.Errorf("set %s state: %w", final, err)
	}

	if opErr != nil {
		return TransitionResult{}, fmt.Errorf("runtime: %w", opErr)
	}

	ins.State = final
	return TransitionResult{
		Instance: ins,
		Applied:  applied,
		Reason:   reason,
	}, nil
}

func (s *svc) authorizedInstance(ctx context.Context, sub authz.Subject, id string) (Instance, error) {
	ins, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		return Instance{}, err
	}

	ok, err := s.access.CanAccess(ctx, sub, id)
	if err != nil {
		return Instance{}, fmt.Errorf("access check: %w", err)
	}
	if !ok {
		return Instance{}, apierrs.ErrPermissionDenied
	}

	return ins, nil
}

func (s *svc) requireOwner(sub authz.Subject, ins Instance) error {
	if sub.Role == authz.RoleAdmin || ins.OwnerID == sub.ID {
		return nil
	}
	return apierrs.ErrPermissionDenied
}

func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
