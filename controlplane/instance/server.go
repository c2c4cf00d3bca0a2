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
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/craftops/warden/controlplane/auth"
	"github.com/craftops/warden/controlplane/authz"
	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/gin-gonic/gin"
)

const defaultLogTail = 500

type Server struct {
	logger  *slog.Logger
	service Service
}

func NewServer(logger *slog.Logger, service Service) *Server {
	return &Server{
		logger:  logger.With("component", "instance-server"),
		service: service,
	}
}

func (s *Server) RegisterRoutes(r gin.IRouter) {
	r.POST("/instances", s.createInstance)
	r.GET("/instances", s.listInstances)
	r.GET("/instances/:id", s.getInstance)
	r.GET("/instances/by-name/:name", s.getInstanceByName)
	r.PATCH("/instances/:id", s.updateInstance)
	r.DELETE("/instances/:id", s.deleteInstance)
	r.POST("/instances/:id/start", s.startInstance)
	r.POST("/instances/:id/stop", s.stopInstance)
	r.POST("/instances/:id/restart", s.restartInstance)
	r.GET("/instances/:id/logs", s.instanceLogs)
	r.PUT("/instances/:id/grants/:subject", s.grantAccess)
	r.DELETE("/instances/:id/grants/:subject", s.revokeAccess)
}

func (s *Server) createInstance(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apierrs.New(apierrs.CodeInvalidArgument, "malformed request body"))
		return
	}

	ins, err := s.service.CreateInstance(c.Request.Context(), sub.ID, req.toNewInstance())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ToTransport(ins))
}

func (s *Server) listInstances(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	list, err := s.service.ListInstances(c.Request.Context(), sub)
	if err != nil {
		s.writeError(c, err)
		return
	}

	out := make([]Transport, 0, len(list))
	for _, ins := range list {
		out = append(out, ToTransport(ins))
	}
	c.JSON(http.StatusOK, gin.H{"instances": out})
}

func (s *Server) getInstance(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	ins, err := s.service.GetInstance(c.Request.Context(), sub, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToTransport(ins))
}

func (s *Server) getInstanceByName(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	ins, err := s.service.GetInstanceByName(c.Request.Context(), sub, c.Param("name"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToTransport(ins))
}

func (s *Server) updateInstance(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apierrs.New(apierrs.CodeInvalidArgument, "malformed request body"))
		return
	}

	ins, err := s.service.UpdateInstance(c.Request.Context(), sub, c.Param("id"), req.toPatch())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToTransport(ins))
}

func (s *Server) deleteInstance(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	if err := s.service.DeleteInstance(c.Request.Context(), sub, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) startInstance(c *gin.Context) {
	s.runTransition(c, s.service.StartInstance)
}

func (s *Server) stopInstance(c *gin.Context) {
	s.runTransition(c, s.service.StopInstance)
}

func (s *Server) restartInstance(c *gin.Context) {
	s.runTransition(c, s.service.RestartInstance)
}

func (s *Server) instanceLogs(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	tail := defaultLogTail
	if raw := c.Query("tail"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(c, apierrs.New(apierrs.CodeInvalidArgument, "tail must be a non-negative integer"))
			return
		}
		tail = n
	}

	logs, err := s.service.InstanceLogs(c.Request.Context(), sub, c.Param("id"), tail)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (s *Server) grantAccess(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	if err := s.service.GrantAccess(c.Request.Context(), sub, c.Param("id"), c.Param("subject")); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) revokeAccess(c *gin.Context) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	if err := s.service.RevokeAccess(c.Request.Context(), sub, c.Param("id"), c.Param("subject")); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) runTransition(
	c *gin.Context,
	op func(ctx context.Context, sub authz.Subject, id string) (TransitionResult, error),
) {
	sub, ok := auth.SubjectFrom(c)
	if !ok {
		s.writeError(c, apierrs.ErrTokenInvalid)
		return
	}

	res, err := op(c.Request.Context(), sub, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransitionResponse{
		Instance: ToTransport(res.Instance),
		Applied:  res.Applied,
		Reason:   res.Reason,
	})
}

// writeError translates a service error into the transport response.
// unknown errors are logged and answered as a bare internal error so
// no detail leaks to the caller.
func (s *Server) writeError(c *gin.Context, err error) {
	var e apierrs.Error
	if errors.As(err, &e) {
		body := gin.H{"code": e.Code, "message": e.Message}
		if len(e.Meta) > 0 {
			body["meta"] = e.Meta
		}
		c.JSON(e.HTTPStatus(), body)
		return
	}

	s.logger.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"err", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    apierrs.CodeInternal,
		"message": "internal error",
	})
}
