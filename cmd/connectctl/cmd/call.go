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
	"io"
	"os"
	"reflect"

	"github.com/palantir/connect-go-sdk/connect"
	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
	"github.com/spf13/cobra"
)

type callResult struct {
	Operation string      `json:"operation"`
	RequestID string      `json:"requestId,omitempty"`
	Attempts  int         `json:"attempts,omitempty"`
	Response  interface{} `json:"response,omitempty"`
}

func newCallCommand(o *options) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "call <operation>",
		Short: "Invoke an operation with a JSON request",
		Long: `Invoke an operation. The request is read as JSON from the --input file, or from standard
input when --input is "-". Without --input an empty request is sent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := connect.LookupOperation(args[0])
			if !ok {
				return werror.Error("unknown operation", werror.SafeParam("operation", args[0]))
			}
			request := reflect.New(op.RequestType)
			if err := o.readRequest(input, request.Interface()); err != nil {
				return err
			}
			client, err := o.newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			ctx := svc1log.WithLogger(cmd.Context(), o.logger)
			response, err := invoke(ctx, client, op, request)
			result := callResult{Operation: op.Name, Response: response}
			if meta, ok := client.ResponseMetadata(request.Interface()); ok {
				result.RequestID = meta.RequestID
				result.Attempts = meta.Attempts
			}
			if err != nil {
				o.logger.Error("operation failed",
					svc1log.SafeParam("operation", op.Name),
					svc1log.SafeParam("requestId", result.RequestID),
					svc1log.Stacktrace(err))
				return err
			}
			o.logger.Info("operation succeeded", svc1log.SafeParam("operation", op.Name), svc1log.SafeParam("requestId", result.RequestID))
			return o.write(result)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", `JSON request file, or "-" for standard input`)
	return cmd
}

func (o *options) readRequest(input string, request interface{}) error {
	var r io.Reader
	switch input {
	case "":
		return nil
	case "-":
		r = o.in
	default:
		f, err := os.Open(input)
		if err != nil {
			return werror.Wrap(err, "failed to open request file", werror.SafeParam("path", input))
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	if err := codecs.JSON.Decode(r, request); err != nil {
		return werror.Wrap(err, "failed to decode request")
	}
	return nil
}
