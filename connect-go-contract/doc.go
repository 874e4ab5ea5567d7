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

// Package contract and its subpackages define the wire contract shared by the
// Connect client runtime and any server speaking to it: body codecs, the
// serialized error model and the User-Agent format.
// Nothing here performs I/O beyond writing a response; transport lives in
// connect-go-client and connect-go-server.
package contract
