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
	"github.com/palantir/connect-go-sdk/connect"
	werror "github.com/palantir/witchcraft-go-error"
	"github.com/spf13/cobra"
)

type operationView struct {
	Name             string   `json:"name"`
	Family           string   `json:"family"`
	Access           string   `json:"access"`
	IdempotencyToken bool     `json:"idempotencyToken,omitempty"`
	Errors           []string `json:"errors"`
}

func newOperationsCommand(o *options) *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List the operations of the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var views []operationView
			for _, op := range connect.Operations() {
				if family != "" && string(op.Family) != family {
					continue
				}
				view := operationView{
					Name:             op.Name,
					Family:           string(op.Family),
					Access:           op.Access.String(),
					IdempotencyToken: op.IdempotencyToken,
				}
				for _, kind := range op.Errors {
					view.Errors = append(view.Errors, string(kind))
				}
				views = append(views, view)
			}
			if len(views) == 0 {
				return unknownFamilyError(family)
			}
			return o.write(views)
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only list operations of this family, e.g. Queue")
	return cmd
}

func unknownFamilyError(family string) error {
	return werror.Error("no operations in family", werror.SafeParam("family", family))
}
