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

package controlplane

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	dockerclient "github.com/docker/docker/client"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftops/warden/controlplane/auth"
	"github.com/craftops/warden/controlplane/authz"
	"github.com/craftops/warden/controlplane/catalog"
	"github.com/craftops/warden/controlplane/instance"
	"github.com/craftops/warden/controlplane/postgres"
	"github.com/craftops/warden/controlplane/rcon"
	"github.com/craftops/warden/controlplane/runtime"
	"github.com/craftops/warden/controlplane/session"
)

type Server struct {
	logger *slog.Logger
	cfg    Config
}

func NewServer(logger *slog.Logger, cfg Config) *Server {
	return &Server{
		logger: logger,
		cfg:    cfg,
	}
}

func (s *Server) Run(ctx context.Context) error {
	pool, err := pgxpool.New(ctx, s.cfg.DBConnString)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	docker, err := dockerclient.NewClientWithOpts(
		dockerclient.FromEnv,
		dockerclient.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return fmt.Errorf("connect to container runtime: %w", err)
	}
	defer docker.Close()

	var (
		db       = postgres.NewDB(s.logger, pool)
		adapter  = runtime.NewAdapter(s.logger, docker, s.cfg.ServerImage)
		cat      = catalog.NewHTTPCatalog(s.cfg.EngineManifestURL, s.cfg.LoaderManifestURL, s.cfg.CatalogCacheTTL)
		access   = authz.NewRuleEvaluator(db)
		cmdPool  = rcon.NewPool(s.logger, rcon.GorconDialer)
		verifier = auth.NewJWTVerifier([]byte(s.cfg.TokenSigningKey))

		insService = instance.NewService(
			s.logger, db, adapter, cat, access, cmdPool, s.cfg.RconHost, s.cfg.StopGracePeriod,
		)
		insServer = instance.NewServer(s.logger, insService)
		hub       = session.NewHub(s.logger, verifier, access, db, adapter, cmdPool, insService)
	)

	cmdPool.Start()
	hub.Start()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/v1", auth.Middleware(verifier))
	insServer.RegisterRoutes(api)

	// the hub authenticates in-band over the socket, so the websocket
	// endpoint sits outside the bearer-token middleware.
	router.GET("/v1/ws", gin.WrapH(hub))

	httpServer := &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: router,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := multierror.Group{}
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cancel()
			return fmt.Errorf("failed to serve api server: %w", err)
		}
		return nil
	})

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("failed to shut down api server", "err", err)
	}

	hub.Shutdown()
	cmdPool.Shutdown()

	return g.Wait().ErrorOrNil()
}
