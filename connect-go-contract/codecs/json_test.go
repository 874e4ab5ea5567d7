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

package codecs_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_UsesMethodsWhenImplemented(t *testing.T) {
	t.Run("Marshal_Unmarshal", func(t *testing.T) {
		obj := map[string]testJSONObject{}
		err := codecs.JSON.Unmarshal([]byte(`{"key":null}`), &obj)
		require.NoError(t, err)
		require.Contains(t, obj, "key")
		require.Equal(t, `null`, string(obj["key"].data))
		data, err := codecs.JSON.Marshal(obj)
		require.NoError(t, err)
		require.Equal(t, `{"key":null}`, string(data))
	})
	t.Run("Encode_Decode", func(t *testing.T) {
		obj := map[string]testJSONObject{}
		r := strings.NewReader(`{"key":"abc"}`)
		err := codecs.JSON.Decode(r, &obj)
		require.NoError(t, err)
		require.Contains(t, obj, "key")
		require.Equal(t, `"abc"`, string(obj["key"].data))
		out := bytes.Buffer{}
		err = codecs.JSON.Encode(&out, obj)
		require.NoError(t, err)
		require.Equal(t, "{\"key\":\"abc\"}\n", out.String())
	})
}

func TestJSON_DecodeKeepsNumberPrecision(t *testing.T) {
	var out map[string]interface{}
	err := codecs.JSON.Decode(strings.NewReader(`{"MaxContacts":9007199254740993}`), &out)
	require.NoError(t, err)
	assert.Equal(t, json.Number("9007199254740993"), out["MaxContacts"])
}

func TestJSON_EncodeDoesNotEscapeHTML(t *testing.T) {
	out, err := codecs.JSON.Marshal(map[string]string{"Content": "<b>hi</b>"})
	require.NoError(t, err)
	assert.Equal(t, `{"Content":"<b>hi</b>"}`, string(out))
}

func TestByContentType(t *testing.T) {
	for _, test := range []struct {
		Name        string
		ContentType string
		Expected    codecs.Codec
		Found       bool
	}{
		{Name: "json", ContentType: "application/json", Expected: codecs.JSON, Found: true},
		{Name: "json with charset", ContentType: "application/json; charset=utf-8", Expected: codecs.JSON, Found: true},
		{Name: "yaml", ContentType: "application/x-yaml", Expected: codecs.YAML, Found: true},
		{Name: "toml", ContentType: "application/toml", Expected: codecs.TOML, Found: true},
		{Name: "unknown", ContentType: "text/plain"},
	} {
		t.Run(test.Name, func(t *testing.T) {
			codec, ok := codecs.ByContentType(test.ContentType)
			assert.Equal(t, test.Found, ok)
			assert.Equal(t, test.Expected, codec)
		})
	}
}

type testJSONObject struct {
	data []byte
}

func (t testJSONObject) MarshalJSON() ([]byte, error) {
	return t.data, nil
}

func (t *testJSONObject) UnmarshalJSON(data []byte) error {
	t.data = data
	return nil
}
