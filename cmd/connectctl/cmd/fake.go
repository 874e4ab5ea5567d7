// Copyright (c) 2026 Palantir Technologies. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/palantir/connect-go-sdk/connect/connecttest"
	"github.com/palantir/connect-go-sdk/connect/region"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newFakeCommand(o *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "fake",
		Short: "Serve an in-memory fake of the service",
		Long: `Serve an in-memory fake of the service until interrupted. State is lost on exit.
When --token is set, requests must carry it as a bearer token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return werror.Wrap(err, "failed to listen", werror.SafeParam("addr", addr))
			}
			return o.serveFake(cmd.Context(), listener)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "address to listen on")
	return cmd
}

// serveFake serves the fake backend on listener until ctx is done.
func (o *options) serveFake(ctx context.Context, listener net.Listener) error {
	level, err := parseLogLevel(o.logLevel)
	if err != nil {
		return err
	}
	opts := []connecttest.Option{connecttest.WithLogOutput(o.errOut, level)}
	if o.token != "" {
		opts = append(opts, connecttest.WithAPIToken(o.token))
	}
	if o.region != "" {
		r := region.Region(o.region)
		if err := r.Validate(); err != nil {
			return err
		}
		opts = append(opts, connecttest.WithRegion(r))
	}

	server := &http.Server{
		Handler:           connecttest.NewBackend(opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve(listener)
	}()
	o.logger.Info("serving fake backend", svc1log.SafeParam("addr", listener.Addr().String()))

	select {
	case err := <-errs:
		return werror.Wrap(err, "fake backend stopped")
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return werror.Wrap(err, "failed to shut down fake backend")
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return werror.Wrap(err, "fake backend stopped")
	}
	return nil
}
