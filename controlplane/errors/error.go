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

package errors

import (
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

/*
 * instance related errors
 */

var (
	ErrInstanceNotFound     = New(CodeNotFound, "instance not found")
	ErrInstanceNameTaken    = New(CodeAlreadyExists, "instance name already exists")
	ErrInvalidInstanceName  = New(CodeInvalidArgument, "instance name is invalid")
	ErrNameImmutable        = New(CodeInvalidArgument, "instance name cannot be changed")
	ErrUnknownEngineVersion = New(CodeInvalidArgument, "engine version is not known")
	ErrUnknownLoaderVersion = New(CodeInvalidArgument, "mod loader version is not known")
	ErrInstanceNotRunning   = New(CodeFailedPrecondition, "instance is not running")
)

/*
 * access related errors
 */

var (
	ErrPermissionDenied = New(CodePermissionDenied, "permission denied")
	ErrGrantExists      = New(CodeAlreadyExists, "access grant already exists")
	ErrGrantNotFound    = New(CodeNotFound, "access grant not found")
	ErrTokenInvalid     = New(CodeUnauthenticated, "token is invalid")
	ErrTokenExpired     = New(CodeUnauthenticated, "token is expired")
)

// PortConflict reports that an exclusive port is already claimed by
// another instance. the conflicting kind and value are carried as
// metadata so callers can tell the user which port to change.
func PortConflict(kind string, port uint16) Error {
	return New(
		CodeAlreadyExists,
		"port is already in use",
		map[string]string{
			"port_kind": kind,
			"port":      fmt.Sprintf("%d", port),
		},
	)
}

type Error struct {
	Message string
	Code    Code
	Meta    map[string]string
}

func (e Error) Error() string {
	return e.Message
}

// Is matches on code and message so sentinel comparisons keep working
// for errors that carry metadata.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// HTTPStatus maps the error code to the status the transport layer
// should answer with.
func (e Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeFailedPrecondition:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func New(args ...any) Error {
	e := Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case string:
			e.Message = arg
		case Code:
			e.Code = arg
		case map[string]string:
			e.Meta = arg
		default:
			continue
		}
	}
	return e
}
