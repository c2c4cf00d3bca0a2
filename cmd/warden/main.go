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

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/lmittmann/tint"
	"github.com/peterbourgon/ff/v3"

	"github.com/craftops/warden/controlplane"
	"github.com/craftops/warden/controlplane/postgres/migrations"
)

func main() {
	var (
		fs                = flag.NewFlagSet("warden", flag.ContinueOnError)
		listenAddr        = fs.String("listen-address", ":9040", "address and port the api server listens on")
		pgConnString      = fs.String("postgres-dsn", "", "connection string in the form of postgres://[user[:password]@][netloc][:port][/dbname][?param1=value1&...]") //nolint:lll
		serverImage       = fs.String("server-image", "itzg/minecraft-server:latest", "container image used for game server workloads")                                 //nolint:lll
		rconHost          = fs.String("rcon-host", "127.0.0.1", "host the command channels of the workloads are reachable on")                                          //nolint:lll
		stopGracePeriod   = fs.Duration("stop-grace-period", 30*time.Second, "how long a workload may take to stop before it is killed")                                //nolint:lll
		engineManifestURL = fs.String("engine-manifest-url", "", "url of the engine version manifest")
		loaderManifestURL = fs.String("loader-manifest-url", "", "url of the mod loader version manifest")
		catalogCacheTTL   = fs.Duration("catalog-cache-ttl", 10*time.Minute, "how long fetched version manifests are cached")
		tokenSigningKey   = fs.String("api-token-signing-key", "", "key used to verify api tokens")
		logFormat         = fs.String("log-format", "json", "log output format, json or text")
	)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("WARDEN"),
	); err != nil {
		die(logger, "failed to parse config", err)
	}

	if *logFormat == "text" {
		logger = slog.New(tint.NewHandler(os.Stdout, nil))
	}

	var (
		cfg = controlplane.Config{
			ListenAddr:        *listenAddr,
			DBConnString:      *pgConnString,
			ServerImage:       *serverImage,
			RconHost:          *rconHost,
			StopGracePeriod:   *stopGracePeriod,
			EngineManifestURL: *engineManifestURL,
			LoaderManifestURL: *loaderManifestURL,
			CatalogCacheTTL:   *catalogCacheTTL,
			TokenSigningKey:   *tokenSigningKey,
		}
		server = controlplane.NewServer(logger, cfg)
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		s := <-c
		logger.Info("received shutdown signal", "signal", s)
		cancel()
	}()

	if err := migrations.Migrate(cfg.DBConnString); err != nil {
		die(logger, "failed to run migrations", err)
	}

	if err := server.Run(ctx); err != nil {
		var multi *multierror.Error
		if errors.As(err, &multi) {
			errs := make([]string, 0, len(multi.WrappedErrors()))
			for _, err := range multi.WrappedErrors() {
				errs = append(errs, err.Error())
			}
			die(logger, "failed to run server", errors.New(strings.Join(errs, ",")))
			return
		}
		die(logger, "failed to run server", err)
	}
}

func die(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
