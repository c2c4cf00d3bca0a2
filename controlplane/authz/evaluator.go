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

package authz

import (
	"context"
	"fmt"
)

type Role string

const (
	// RoleAdmin is the owning role with access to every instance.
	RoleAdmin Role = "ADMIN"
	// RoleUser is the restricted role requiring ownership or an
	// explicit grant per instance.
	RoleUser Role = "USER"
)

type Subject struct {
	ID   string
	Role Role
}

type Repository interface {
	// InstanceOwner returns the owner subject id, or the empty string
	// when the instance does not exist. existence is checked by the
	// caller, not here.
	InstanceOwner(ctx context.Context, instanceID string) (string, error)
	HasGrant(ctx context.Context, subjectID string, instanceID string) (bool, error)
}

type AccessEvaluator interface {
	CanAccess(ctx context.Context, sub Subject, instanceID string) (bool, error)
}

type RuleEvaluator struct {
	repo Repository
}

func NewRuleEvaluator(repo Repository) *RuleEvaluator {
	return &RuleEvaluator{
		repo: repo,
	}
}

// CanAccess decides whether the subject may act on the instance.
// admins always pass. restricted subjects pass when they own the
// instance or hold a grant for it. a missing instance yields false,
// never a not-found error.
func (e *RuleEvaluator) CanAccess(ctx context.Context, sub Subject, instanceID string) (bool, error) {
	if sub.Role == RoleAdmin {
		return true, nil
	}

	owner, err := e.repo.InstanceOwner(ctx, instanceID)
	if err != nil {
		return false, fmt.Errorf("instance owner: %w", err)
	}
	if owner != "" && owner == sub.ID {
		return true, nil
	}

	granted, err := e.repo.HasGrant(ctx, sub.ID, instanceID)
	if err != nil {
		return false, fmt.Errorf("grant lookup: %w", err)
	}

	return granted, nil
}
