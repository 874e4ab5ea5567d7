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
	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	werror "github.com/palantir/witchcraft-go-error"
)

func encoderFor(format string) (codecs.Encoder, error) {
	switch format {
	case "json":
		return codecs.JSON, nil
	case "yaml":
		return codecs.YAML, nil
	}
	return nil, werror.Error("unknown output format", werror.SafeParam("format", format))
}

// write prints v in the selected format. Values are normalized through JSON first so that YAML
// output uses the wire field names.
func (o *options) write(v interface{}) error {
	encoder, err := encoderFor(o.output)
	if err != nil {
		return err
	}
	raw, err := codecs.JSON.Marshal(v)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := codecs.JSON.Unmarshal(raw, &generic); err != nil {
		return err
	}
	return encoder.Encode(o.out, generic)
}
