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

// Package auth verifies api tokens. token issuance lives outside this
// service; all it consumes is "verify token, get subject and role".
package auth

import (
	"errors"
	"fmt"

	"github.com/craftops/warden/controlplane/authz"
	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenVerifier interface {
	Verify(token string) (authz.Subject, error)
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type JWTVerifier struct {
	key []byte
}

func NewJWTVerifier(signingKey []byte) *JWTVerifier {
	return &JWTVerifier{
		key: signingKey,
	}
}

func (v *JWTVerifier) Verify(raw string) (authz.Subject, error) {
	var claims tokenClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return v.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return authz.Subject{}, apierrs.ErrTokenExpired
		}
		return authz.Subject{}, apierrs.ErrTokenInvalid
	}
	if !tok.Valid {
		return authz.Subject{}, apierrs.ErrTokenInvalid
	}

	role := authz.Role(claims.Role)
	if role != authz.RoleAdmin && role != authz.RoleUser {
		return authz.Subject{}, apierrs.ErrTokenInvalid
	}

	return authz.Subject{
		ID:   claims.Subject,
		Role: role,
	}, nil
}
