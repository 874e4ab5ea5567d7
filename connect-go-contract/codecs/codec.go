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

// Package codecs contains the body encodings understood by the Connect runtime.
package codecs

import (
	"io"
)

// Decoder decodes request or response bodies.
type Decoder interface {
	// Accept returns the media type sent in the Accept header.
	Accept() string
	Decode(r io.Reader, v interface{}) error
	Unmarshal(data []byte, v interface{}) error
}

// Encoder encodes request or response bodies.
type Encoder interface {
	// ContentType returns the media type sent in the Content-Type header.
	ContentType() string
	Encode(w io.Writer, v interface{}) error
	Marshal(v interface{}) ([]byte, error)
}

// Codec is both an Encoder and a Decoder.
type Codec interface {
	Decoder
	Encoder
}

// ByContentType returns the codec matching a media type, or false when none
// is registered. Parameters such as charset are ignored.
func ByContentType(contentType string) (Codec, bool) {
	mediaType := contentType
	for i, r := range contentType {
		if r == ';' {
			mediaType = contentType[:i]
			break
		}
	}
	switch mediaType {
	case contentTypeJSON:
		return JSON, true
	case contentTypeYAML, "application/yaml", "text/yaml":
		return YAML, true
	case contentTypeTOML:
		return TOML, true
	}
	return nil, false
}
