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

// Package cmd holds the connectctl commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/spf13/cobra"
)

// options are the global flags shared by every command.
type options struct {
	configFile string
	endpoint   string
	region     string
	token      string
	output     string
	logLevel   string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger svc1log.Logger
}

// NewRootCommand returns the connectctl command tree reading from in and writing results to out
// and logs to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := &options{in: in, out: out, errOut: errOut}
	root := &cobra.Command{
		Use:   "connectctl",
		Short: "Manage contact-center resources",
		Long: `connectctl invokes the operations of the contact-center management service.

Examples:
  connectctl operations --family Queue
  connectctl call ListQueues --region us-east-1 --input request.json
  echo '{"InstanceId":"..."}' | connectctl call ListQueues --endpoint localhost:8080 --input -
  connectctl fake --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.complete()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "configuration file (.yml, .yaml or .toml)")
	flags.StringVar(&o.endpoint, "endpoint", "", "service endpoint, overrides the configuration file")
	flags.StringVar(&o.region, "region", "", "service region, overrides the configuration file")
	flags.StringVar(&o.token, "token", "", "API token, overrides the configuration file")
	flags.StringVarP(&o.output, "output", "o", "json", "output format: json or yaml")
	flags.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newOperationsCommand(o),
		newCallCommand(o),
		newFakeCommand(o),
	)
	return root
}

func (o *options) complete() error {
	level, err := parseLogLevel(o.logLevel)
	if err != nil {
		return err
	}
	if _, err := encoderFor(o.output); err != nil {
		return err
	}
	o.logger = svc1log.NewFromCreator(o.errOut, level, wlog.NewJSONMarshalLoggerProvider().NewLeveledLogger, svc1log.Origin("connectctl"))
	return nil
}

func parseLogLevel(level string) (wlog.LogLevel, error) {
	switch l := wlog.LogLevel(strings.ToLower(level)); l {
	case wlog.DebugLevel, wlog.InfoLevel, wlog.WarnLevel, wlog.ErrorLevel:
		return l, nil
	}
	return "", werror.Error("unknown log level", werror.SafeParam("level", level))
}

// Execute runs the command tree with args. A failure is printed to errOut with its safe
// parameters before it is returned.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	root := NewRootCommand(in, out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(errOut, err)
	}
	return err
}

func printError(w io.Writer, err error) {
	safeParams, _ := werror.ParamsFromError(err)
	keys := make([]string, 0, len(safeParams))
	for k := range safeParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(err.Error())
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, safeParams[k])
	}
	_, _ = fmt.Fprintln(w, b.String())
}
