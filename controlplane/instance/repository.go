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

import "context"

type Repository interface {
	// CreateInstance inserts the instance row together with one access
	// grant per subject in grantedTo, all in a single transaction.
	// the store's uniqueness constraints on name, server port and rcon
	// port are the final arbiter for collisions; violations surface as
	// conflict errors.
	CreateInstance(ctx context.Context, ins Instance, grantedTo []string) (Instance, error)
	GetInstanceByID(ctx context.Context, id string) (Instance, error)
	GetInstanceByName(ctx context.Context, name string) (Instance, error)
	// ListInstances returns all instances ordered by creation time
	// descending.
	ListInstances(ctx context.Context) ([]Instance, error)
	// ListAccessibleInstances returns instances the subject owns or
	// holds a grant for, ordered by creation time descending.
	ListAccessibleInstances(ctx context.Context, subjectID string) ([]Instance, error)
	// UpdateInstance applies a sparse patch and returns the updated row.
	UpdateInstance(ctx context.Context, id string, patch Patch) (Instance, error)
	UpdateInstanceState(ctx context.Context, id string, state State) error
	// DeleteInstance removes the row. grants cascade at the store layer.
	DeleteInstance(ctx context.Context, id string) error
	// UsedPorts derives the currently claimed ports across all
	// instances. read live, never cached, so concurrent creations are
	// reflected.
	UsedPorts(ctx context.Context) (UsedPorts, error)
	CreateGrant(ctx context.Context, subjectID string, instanceID string) error
	DeleteGrant(ctx context.Context, subjectID string, instanceID string) error
}
