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

// Package runtime wraps the container runtime. it is stateless aside
// from the runtime-assigned container ids it returns; all durable
// state lives in the instance repository.
package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/craftops/warden/controlplane/instance"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
)

// fixed in-container ports of the game server image. host side
// bindings come from the instance's port reservations.
const (
	containerServerPort = "25565/tcp"
	containerRconPort   = "25575/tcp"
	containerVoicePort  = "24454/udp"
	containerBridgePort = "19132/udp"
)

const namePrefix = "warden-"

var ErrWorkloadExists = fmt.Errorf("workload already exists")

type WorkloadStatus struct {
	Running bool
	// Ports maps the container port spec to the bound host port.
	Ports map[string]string
}

type Adapter interface {
	// CreateWorkload creates the persistent volume and the container
	// for the instance without starting it and returns the container
	// id. fails with ErrWorkloadExists when a container with the
	// derived name is already present.
	CreateWorkload(ctx context.Context, ins instance.Instance) (string, error)
	// Start starts the container. returns false without error when it
	// is already running.
	Start(ctx context.Context, handle string) (bool, error)
	// Stop stops the container within the grace period. returns false
	// without error when it is not running.
	Stop(ctx context.Context, handle string, grace time.Duration) (bool, error)
	Restart(ctx context.Context, handle string, grace time.Duration) error
	// Delete stops and removes the container and, when deleteVolume is
	// set, its volume. volume removal failures are logged and not
	// returned.
	Delete(ctx context.Context, handle string, deleteVolume bool) error
	// Logs returns container output, limited to the last tailLines
	// lines when positive. since limits the window when non-zero.
	Logs(ctx context.Context, handle string, tailLines int, since time.Time) (string, error)
	// Inspect reports the runtime state. a missing container is a
	// normal outcome reported as found=false, not an error.
	Inspect(ctx context.Context, handle string) (WorkloadStatus, bool, error)
}

type adapter struct {
	logger *slog.Logger
	docker DockerClient
	image  string
}

func NewAdapter(logger *slog.Logger, docker DockerClient, serverImage string) Adapter {
	return &adapter{
		logger: logger.With("component", "runtime-adapter"),
		docker: docker,
		image:  serverImage,
	}
}

func (a *adapter) CreateWorkload(ctx context.Context, ins instance.Instance) (string, error) {
	name := namePrefix + ins.Name

	existing, err := a.docker.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return "", fmt.Errorf("list containers: %w", err)
	}
	if len(existing) > 0 {
		return "", ErrWorkloadExists
	}

	vol, err := a.docker.VolumeCreate(ctx, volume.CreateOptions{
		Name: name + "-data",
	})
	if err != nil {
		return "", fmt.Errorf("create volume: %w", err)
	}

	reader, err := a.docker.ImagePull(ctx, a.image, image.PullOptions{})
	if err != nil {
		a.removeOrphanVolume(ctx, vol.Name)
		return "", fmt.Errorf("pull image: %w", err)
	}
	// the pull only completes once the response has been drained
	_, _ = io.Copy(io.Discard, reader)
	_ = reader.Close()

	exposed, bindings := portBindings(ins)

	resp, err := a.docker.ContainerCreate(
		ctx,
		&container.Config{
			Image:        a.image,
			Env:          envVars(ins),
			ExposedPorts: exposed,
			Labels: map[string]string{
				"io.warden.instance-id":   ins.ID,
				"io.warden.instance-name": ins.Name,
			},
		},
		&container.HostConfig{
			PortBindings: bindings,
			Binds:        []string{vol.Name + ":/data"},
			RestartPolicy: container.RestartPolicy{
				Name: container.RestartPolicyUnlessStopped,
			},
			Resources: container.Resources{
				Memory: int64(ins.MemoryMB) * 1024 * 1024,
			},
		},
		nil,
		nil,
		name,
	)
	if err != nil {
		a.removeOrphanVolume(ctx, vol.Name)
		return "", fmt.Errorf("create container: %w", err)
	}

	a.logger.InfoContext(ctx, "created workload",
		"instance_id", ins.ID,
		"container_id", resp.ID,
		"volume", vol.Name,
	)

	return resp.ID, nil
}

// removeOrphanVolume cleans up the data volume when workload creation
// fails after it was provisioned. best-effort, the creation error is
// what the caller sees.
func (a *adapter) removeOrphanVolume(ctx context.Context, name string) {
	if err := a.docker.VolumeRemove(ctx, name, true); err != nil {
		a.logger.WarnContext(ctx, "failed to remove volume",
			"volume", name,
			"err", err,
		)
	}
}

func (a *adapter) Start(ctx context.Context, handle string) (bool, error) {
	status, found, err := a.Inspect(ctx, handle)
	if err != nil {
		return false, fmt.Errorf("inspect: %w", err)
	}
	if found && status.Running {
		return false, nil
	}

	if err := a.docker.ContainerStart(ctx, handle, container.StartOptions{}); err != nil {
		return false, fmt.Errorf("start container: %w", err)
	}

	return true, nil
}

func (a *adapter) Stop(ctx context.Context, handle string, grace time.Duration) (bool, error) {
	status, found, err := a.Inspect(ctx, handle)
	if err != nil {
		return false, fmt.Errorf("inspect: %w", err)
	}
	if !found || !status.Running {
		return false, nil
	}

	secs := int(grace.Seconds())
	if err := a.docker.ContainerStop(ctx, handle, container.StopOptions{
		Timeout: &secs,
	}); err != nil {
		return false, fmt.Errorf("stop container: %w", err)
	}

	return true, nil
}

func (a *adapter) Restart(ctx context.Context, handle string, grace time.Duration) error {
	secs := int(grace.Seconds())
	if err := a.docker.ContainerRestart(ctx, handle, container.StopOptions{
		Timeout: &secs,
	}); err != nil {
		return fmt.Errorf("restart container: %w", err)
	}
	return nil
}

func (a *adapter) Delete(ctx context.Context, handle string, deleteVolume bool) error {
	inspect, err := a.docker.ContainerInspect(ctx, handle)
	if err != nil && !cerrdefs.IsNotFound(err) {
		return fmt.Errorf("inspect: %w", err)
	}

	if err == nil {
		if err := a.docker.ContainerRemove(ctx, handle, container.RemoveOptions{
			Force: true,
		}); err != nil {
			return fmt.Errorf("remove container: %w", err)
		}

		if deleteVolume {
			for _, m := range inspect.Mounts {
				if m.Type != mount.TypeVolume {
					continue
				}
				// best-effort: a lingering volume must not fail the delete
				if err := a.docker.VolumeRemove(ctx, m.Name, true); err != nil {
					a.logger.WarnContext(ctx, "failed to remove volume",
						"volume", m.Name,
						"container_id", handle,
						"err", err,
					)
				}
			}
		}
	}

	return nil
}

func (a *adapter) Logs(ctx context.Context, handle string, tailLines int, since time.Time) (string, error) {
	opts := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       "all",
	}
	if tailLines > 0 {
		opts.Tail = strconv.Itoa(tailLines)
	}
	if !since.IsZero() {
		opts.Since = since.Format(time.RFC3339Nano)
	}

	reader, err := a.docker.ContainerLogs(ctx, handle, opts)
	if err != nil {
		return "", fmt.Errorf("container logs: %w", err)
	}
	defer reader.Close()

	// the container runs without a tty, so stdout and stderr arrive
	// multiplexed and need to be demuxed
	var buf bytes.Buffer
	if _, err := stdcopy.StdCopy(&buf, &buf, reader); err != nil {
		return "", fmt.Errorf("demux logs: %w", err)
	}

	return buf.String(), nil
}

func (a *adapter) Inspect(ctx context.Context, handle string) (WorkloadStatus, bool, error) {
	resp, err := a.docker.ContainerInspect(ctx, handle)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return WorkloadStatus{}, false, nil
		}
		return WorkloadStatus{}, false, fmt.Errorf("inspect container: %w", err)
	}

	status := WorkloadStatus{
		Ports: make(map[string]string),
	}
	if resp.State != nil {
		status.Running = resp.State.Running
	}
	if resp.NetworkSettings != nil {
		for port, binds := range resp.NetworkSettings.Ports {
			if len(binds) == 0 {
				continue
			}
			status.Ports[string(port)] = binds[0].HostPort
		}
	}

	return status, true, nil
}

func envVars(ins instance.Instance) []string {
	env := []string{
		"EULA=TRUE",
		"VERSION=" + ins.EngineVersion,
		fmt.Sprintf("MEMORY=%dM", ins.MemoryMB),
		fmt.Sprintf("MAX_PLAYERS=%d", ins.MaxPlayers),
		"ENABLE_RCON=true",
		"RCON_PASSWORD=" + ins.RconPassword,
	}
	if ins.ModLoaderVersion != "" {
		env = append(env, "TYPE=FORGE", "FORGE_VERSION="+ins.ModLoaderVersion)
	}
	return env
}

func portBindings(ins instance.Instance) (nat.PortSet, nat.PortMap) {
	exposed := nat.PortSet{}
	bindings := nat.PortMap{}

	bind := func(spec string, hostPort uint16) {
		port := nat.Port(spec)
		exposed[port] = struct{}{}
		bindings[port] = []nat.PortBinding{{
			HostPort: strconv.Itoa(int(hostPort)),
		}}
	}

	bind(containerServerPort, ins.ServerPort)
	bind(containerRconPort, ins.RconPort)
	if ins.VoicePort != nil {
		bind(containerVoicePort, *ins.VoicePort)
	}
	if ins.BridgePort != nil {
		bind(containerBridgePort, *ins.BridgePort)
	}

	return exposed, bindings
}

