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

	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func (db *DB) CreateGrant(ctx context.Context, subjectID string, instanceID string) error {
	return db.do(ctx, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO access_grants (subject_id, instance_id) VALUES ($1, $2)`,
			subjectID, instanceID,
		)
		if constraintViolated(err, pgUniqueViolation, "access_grants_pkey") {
			return apierrs.ErrGrantExists
		}
		if constraintViolated(err, pgForeignKeyViolation, "access_grants_instance_id_fkey") {
			return apierrs.ErrInstanceNotFound
		}
		if err != nil {
			return fmt.Errorf("insert grant: %w", err)
		}
		return nil
	})
}

func (db *DB) DeleteGrant(ctx context.Context, subjectID string, instanceID string) error {
	return db.do(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, `
			DELETE FROM access_grants WHERE subject_id = $1 AND instance_id = $2`,
			subjectID, instanceID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apierrs.ErrGrantNotFound
		}
		return nil
	})
}

// InstanceOwner returns the owner of the instance, or the empty
// string when the instance does not exist. the access evaluator does
// not distinguish absence; existence is the caller's concern.
func (db *DB) InstanceOwner(ctx context.Context, instanceID string) (string, error) {
	var owner string
	if err := db.do(ctx, func(conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, `
			SELECT owner_id FROM instances WHERE id = $1`, instanceID,
		).Scan(&owner)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}); err != nil {
		return "", err
	}
	return owner, nil
}

func (db *DB) HasGrant(ctx context.Context, subjectID string, instanceID string) (bool, error) {
	var granted bool
	if err := db.do(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM access_grants WHERE subject_id = $1 AND instance_id = $2
			)`,
			subjectID, instanceID,
		).Scan(&granted)
	}); err != nil {
		return false, err
	}
	return granted, nil
}
