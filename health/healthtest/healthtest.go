// SPDX-License-Identifier: MIT

// Package healthtest starts a health.Server around a test, the way the
// service test suites bring the host up before each case and down after it.
package healthtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtx4/health"
)

// Config returns a test configuration: loopback, free port, APP_ENV=test.
func Config() health.Config {
	return health.Config{
		Host:            "127.0.0.1",
		Port:            0,
		Env:             health.EnvTest,
		ShutdownTimeout: health.DefaultShutdownTimeout,
	}
}

// Start starts a server with cfg and registers its Stop with t.Cleanup.
// cfg.Env must be "test"; anything else fails the test before binding.
func Start(t testing.TB, cfg health.Config) *health.Server {
	t.Helper()
	require.Equal(t, health.EnvTest, cfg.Env, "healthtest: invalid APP_ENV")

	srv := health.NewServer(cfg, nil)
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		require.NoError(t, srv.Stop(ctx))
	})

	return srv
}

// URL returns the base URL of a started server.
func URL(srv *health.Server) string { return "http://" + srv.Addr() }
