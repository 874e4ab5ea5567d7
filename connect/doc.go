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

// Package connect is a client for the contact-center management service.
//
// The service exposes one remote operation per request type. Operations are grouped by the
// resource family they act on, and each family has its own interface (QueueAPI, UserAPI, ...)
// so that consumers can depend on, and mock, only what they use. Client composes every family.
//
// A client is configured once:
//
//	client, err := connect.New(connect.Config{Region: region.USEast1, APIToken: token})
//
// There are no setters; the configuration cannot change after construction.
//
// Every failure is either a *ClientError (no interpretable response was obtained) or a
// *ServiceError whose Kind is one of the operation's declared kinds or KindService:
//
//	if connect.IsKind(err, connect.KindResourceNotFound) { ... }
//
// Operations(), LookupOperation and (*Operation).Declares describe the catalogue at run time.
package connect
