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

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/craftops/warden/controlplane/instance"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const instanceColumns = `id, name, engine_version, mod_loader_version, memory_mb, max_players,
server_port, rcon_port, voice_port, bridge_port, state, runtime_handle, owner_id,
rcon_password, created_at, updated_at`

func scanInstance(row pgx.Row) (instance.Instance, error) {
	var (
		ins        instance.Instance
		voicePort  *int32
		bridgePort *int32
		serverPort int32
		rconPort   int32
		state      string
	)
	if err := row.Scan(
		&ins.ID,
		&ins.Name,
		&ins.EngineVersion,
		&ins.ModLoaderVersion,
		&ins.MemoryMB,
		&ins.MaxPlayers,
		&serverPort,
		&rconPort,
		&voicePort,
		&bridgePort,
		&state,
		&ins.RuntimeHandle,
		&ins.OwnerID,
		&ins.RconPassword,
		&ins.CreatedAt,
		&ins.UpdatedAt,
	); err != nil {
		return instance.Instance{}, err
	}

	ins.ServerPort = uint16(serverPort)
	ins.RconPort = uint16(rconPort)
	ins.VoicePort = toUint16(voicePort)
	ins.BridgePort = toUint16(bridgePort)
	ins.State = instance.State(state)
	ins.CreatedAt = ins.CreatedAt.UTC()
	ins.UpdatedAt = ins.UpdatedAt.UTC()

	return ins, nil
}

func toUint16(v *int32) *uint16 {
	if v == nil {
		return nil
	}
	u := uint16(*v)
	return &u
}

func toInt32(v *uint16) *int32 {
	if v == nil {
		return nil
	}
	i := int32(*v)
	return &i
}

// mapInstanceConflict translates unique violations of the instance
// table's constraints into the structured conflict errors callers can
// act on. the store constraints are the final arbiter under
// concurrent creations; the port registry pre-check is an
// optimization only.
func mapInstanceConflict(err error, ins instance.Instance) error {
	switch {
	case constraintViolated(err, pgUniqueViolation, "instances_name_key"):
		return apierrs.ErrInstanceNameTaken
	case constraintViolated(err, pgUniqueViolation, "instances_server_port_key"):
		return apierrs.PortConflict(string(instance.PortKindServer), ins.ServerPort)
	case constraintViolated(err, pgUniqueViolation, "instances_rcon_port_key"):
		return apierrs.PortConflict(string(instance.PortKindRcon), ins.RconPort)
	case constraintViolated(err, pgUniqueViolation, "instances_bridge_port_key") && ins.BridgePort != nil:
		return apierrs.PortConflict(string(instance.PortKindBridge), *ins.BridgePort)
	default:
		return err
	}
}

func (db *DB) CreateInstance(ctx context.Context, ins instance.Instance, grantedTo []string) (instance.Instance, error) {
	var ret instance.Instance
	if err := db.doTX(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO instances (
				id, name, engine_version, mod_loader_version, memory_mb, max_players,
				server_port, rcon_port, voice_port, bridge_port, state, runtime_handle,
				owner_id, rcon_password
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			ins.ID,
			ins.Name,
			ins.EngineVersion,
			ins.ModLoaderVersion,
			ins.MemoryMB,
			ins.MaxPlayers,
			int32(ins.ServerPort),
			int32(ins.RconPort),
			toInt32(ins.VoicePort),
			toInt32(ins.BridgePort),
			string(ins.State),
			ins.RuntimeHandle,
			ins.OwnerID,
			ins.RconPassword,
		); err != nil {
			return fmt.Errorf("insert instance: %w", mapInstanceConflict(err, ins))
		}

		for _, subjectID := range grantedTo {
			if _, err := tx.Exec(ctx, `
				INSERT INTO access_grants (subject_id, instance_id) VALUES ($1, $2)`,
				subjectID, ins.ID,
			); err != nil {
				if constraintViolated(err, pgUniqueViolation, "access_grants_pkey") {
					return fmt.Errorf("insert grant: %w", apierrs.ErrGrantExists)
				}
				return fmt.Errorf("insert grant: %w", err)
			}
		}

		row := tx.QueryRow(ctx, `SELECT `+instanceColumns+` FROM instances WHERE id = $1`, ins.ID)
		created, err := scanInstance(row)
		if err != nil {
			return fmt.Errorf("read instance: %w", err)
		}
		ret = created

		return nil
	}); err != nil {
		return instance.Instance{}, err
	}

	return ret, nil
}

func (db *DB) GetInstanceByID(ctx context.Context, id string) (instance.Instance, error) {
	return db.getInstance(ctx, `SELECT `+instanceColumns+` FROM instances WHERE id = $1`, id)
}

func (db *DB) GetInstanceByName(ctx context.Context, name string) (instance.Instance, error) {
	return db.getInstance(ctx, `SELECT `+instanceColumns+` FROM instances WHERE name = $1`, name)
}

func (db *DB) getInstance(ctx context.Context, query string, arg any) (instance.Instance, error) {
	var ret instance.Instance
	if err := db.do(ctx, func(conn *pgxpool.Conn) error {
		ins, err := scanInstance(conn.QueryRow(ctx, query, arg))
		if errors.Is(err, pgx.ErrNoRows) {
			return apierrs.ErrInstanceNotFound
		}
		if err != nil {
			return err
		}
		ret = ins
		return nil
	}); err != nil {
		return instance.Instance{}, err
	}
	return ret, nil
}

func (db *DB) ListInstances(ctx context.Context) ([]instance.Instance, error) {
	return db.listInstances(ctx, `SELECT `+instanceColumns+` FROM instances ORDER BY created_at DESC`)
}

func (db *DB) ListAccessibleInstances(ctx context.Context, subjectID string) ([]instance.Instance, error) {
	return db.listInstances(ctx, `
		SELECT `+instanceColumns+` FROM instances
		WHERE owner_id = $1
		   OR id IN (SELECT instance_id FROM access_grants WHERE subject_id = $1)
		ORDER BY created_at DESC`,
		subjectID,
	)
}

func (db *DB) listInstances(ctx context.Context, query string, args ...any) ([]instance.Instance, error) {
	ret := make([]instance.Instance, 0)
	if err := db.do(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			ins, err := scanInstance(rows)
			if err != nil {
				return err
			}
			ret = append(ret, ins)
		}

		return rows.Err()
	}); err != nil {
		return nil, err
	}
	return ret, nil
}

func (db *DB) UpdateInstance(ctx context.Context, id string, patch instance.Patch) (instance.Instance, error) {
	set := make([]string, 0, 4)
	args := []any{id}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.EngineVersion != nil {
		add("engine_version", *patch.EngineVersion)
	}
	if patch.ModLoaderVersion != nil {
		add("mod_loader_version", *patch.ModLoaderVersion)
	}
	if patch.MemoryMB != nil {
		add("memory_mb", *patch.MemoryMB)
	}
	if patch.MaxPlayers != nil {
		add("max_players", *patch.MaxPlayers)
	}

	if len(set) == 0 {
		return db.GetInstanceByID(ctx, id)
	}

	query := fmt.Sprintf(`
		UPDATE instances SET %s, updated_at = now()
		WHERE id = $1
		RETURNING `+instanceColumns,
		strings.Join(set, ", "),
	)

	var ret instance.Instance
	if err := db.do(ctx, func(conn *pgxpool.Conn) error {
		ins, err := scanInstance(conn.QueryRow(ctx, query, args...))
		if errors.Is(err, pgx.ErrNoRows) {
			return apierrs.ErrInstanceNotFound
		}
		if err != nil {
			return err
		}
		ret = ins
		return nil
	}); err != nil {
		return instance.Instance{}, err
	}

	return ret, nil
}

func (db *DB) UpdateInstanceState(ctx context.Context, id string, state instance.State) error {
	return db.do(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, `
			UPDATE instances SET state = $2, updated_at = now() WHERE id = $1`,
			id, string(state),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apierrs.ErrInstanceNotFound
		}
		return nil
	})
}

func (db *DB) DeleteInstance(ctx context.Context, id string) error {
	return db.do(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM instances WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apierrs.ErrInstanceNotFound
		}
		return nil
	})
}

func (db *DB) UsedPorts(ctx context.Context) (instance.UsedPorts, error) {
	used := instance.NewUsedPorts()
	if err := db.do(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT server_port, rcon_port, voice_port, bridge_port FROM instances`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				server, rcon  int32
				voice, bridge *int32
			)
			if err := rows.Scan(&server, &rcon, &voice, &bridge); err != nil {
				return err
			}
			used.Server[uint16(server)] = struct{}{}
			used.Rcon[uint16(rcon)] = struct{}{}
			if voice != nil {
				used.Voice[uint16(*voice)] = struct{}{}
			}
			if bridge != nil {
				used.Bridge[uint16(*bridge)] = struct{}{}
			}
		}

		return rows.Err()
	}); err != nil {
		return instance.UsedPorts{}, err
	}
	return used, nil
}
