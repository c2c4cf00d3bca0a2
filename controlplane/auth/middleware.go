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

package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/craftops/warden/controlplane/authz"
	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/gin-gonic/gin"
)

const subjectKey = "auth.subject"

// Middleware authenticates the request from its bearer token and
// stores the resulting subject in the request context.
func Middleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apierrs.CodeUnauthenticated,
				"message": "missing bearer token",
			})
			return
		}

		sub, err := verifier.Verify(raw)
		if err != nil {
			var e apierrs.Error
			status, code, msg := http.StatusUnauthorized, apierrs.CodeUnauthenticated, "token is invalid"
			if errors.As(err, &e) {
				status, code, msg = e.HTTPStatus(), e.Code, e.Message
			}
			c.AbortWithStatusJSON(status, gin.H{"code": code, "message": msg})
			return
		}

		c.Set(subjectKey, sub)
		c.Next()
	}
}

// SubjectFrom returns the authenticated subject stored by Middleware.
func SubjectFrom(c *gin.Context) (authz.Subject, bool) {
	v, ok := c.Get(subjectKey)
	if !ok {
		return authz.Subject{}, false
	}
	sub, ok := v.(authz.Subject)
	return sub, ok
}
