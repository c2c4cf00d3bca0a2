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

package auth_test

import (
	"testing"
	"time"

	"github.com/craftops/warden/controlplane/auth"
	"github.com/craftops/warden/controlplane/authz"
	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("test-signing-key")

func signToken(t *testing.T, key []byte, method jwt.SigningMethod, claims jwt.Claims) string {
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func claims(sub string, role string, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  exp.Unix(),
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		token    func(t *testing.T) string
		expected authz.Subject
		err      error
	}{
		{
			name: "admin token",
			token: func(t *testing.T) string {
				return signToken(t, signingKey, jwt.SigningMethodHS256, claims("admin-1", "ADMIN", time.Now().Add(time.Hour)))
			},
			expected: authz.Subject{ID: "admin-1", Role: authz.RoleAdmin},
		},
		{
			name: "user token",
			token: func(t *testing.T) string {
				return signToken(t, signingKey, jwt.SigningMethodHS256, claims("user-1", "USER", time.Now().Add(time.Hour)))
			},
			expected: authz.Subject{ID: "user-1", Role: authz.RoleUser},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return signToken(t, signingKey, jwt.SigningMethodHS256, claims("user-1", "USER", time.Now().Add(-time.Hour)))
			},
			err: apierrs.ErrTokenExpired,
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				return signToken(t, []byte("other-key"), jwt.SigningMethodHS256, claims("user-1", "USER", time.Now().Add(time.Hour)))
			},
			err: apierrs.ErrTokenInvalid,
		},
		{
			name: "unknown role",
			token: func(t *testing.T) string {
				return signToken(t, signingKey, jwt.SigningMethodHS256, claims("user-1", "SUPERUSER", time.Now().Add(time.Hour)))
			},
			err: apierrs.ErrTokenInvalid,
		},
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
			err: apierrs.ErrTokenInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := auth.NewJWTVerifier(signingKey)

			sub, err := verifier.Verify(tt.token(t))

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, sub)
		})
	}
}
