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

package connecttest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/palantir/connect-go-sdk/connect"
	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	"github.com/palantir/connect-go-sdk/connect-go-contract/errors"
	"github.com/palantir/connect-go-sdk/connect/region"
	wparams "github.com/palantir/witchcraft-go-params"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// collection describes where a kind of resource keeps its identifier and ARN.
type collection struct {
	idKey      string
	arnKey     string
	arnSegment string
}

type record struct {
	seq    int64
	fields map[string]interface{}
}

type resourceRef struct {
	collection string
	key        string
}

type replay struct {
	request  []byte
	response interface{}
}

// state is the store behind a Backend. Every call runs with mu held.
type state struct {
	mu sync.Mutex

	region      region.Region
	seq         int64
	records     map[string]map[string]*record
	arns        map[string]resourceRef
	tags        map[string]map[string]string
	links       map[string]map[string]map[string]struct{}
	idempotency map[string]replay
}

func newState(r region.Region) *state {
	return &state{
		region:      r,
		records:     make(map[string]map[string]*record),
		arns:        make(map[string]resourceRef),
		tags:        make(map[string]map[string]string),
		links:       make(map[string]map[string]map[string]struct{}),
		idempotency: make(map[string]replay),
	}
}

// call checks required fields, replays idempotent requests and runs the behavior.
func (s *state) call(op *connect.Operation, bh behavior, body map[string]interface{}) (interface{}, error) {
	if missing := missingFields(body, bh.required); len(missing) > 0 {
		return nil, newKindError(invalidKind(op), "missing required field "+strings.Join(missing, ", "))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var replayKey string
	var canonical []byte
	if token, _ := body["ClientToken"].(string); op.IdempotencyToken && token != "" {
		var err error
		if canonical, err = codecs.JSON.Marshal(body); err != nil {
			return nil, errors.WrapWithInternal(err)
		}
		replayKey = op.Name + "/" + token
		if prev, ok := s.idempotency[replayKey]; ok {
			if !bytes.Equal(prev.request, canonical) {
				kind := firstDeclared(op, invalidKind(op), connect.KindIdempotencyConflict, connect.KindResourceConflict)
				return nil, newKindError(kind, "client token was already used with a different request")
			}
			return prev.response, nil
		}
	}

	resp, err := bh.run(s, &call{op: op, body: body})
	if err != nil {
		return nil, err
	}
	if replayKey != "" {
		s.idempotency[replayKey] = replay{request: canonical, response: resp}
	}
	return resp, nil
}

func (s *state) arn(name string, coll collection, instanceID, id string) string {
	prefix := fmt.Sprintf("arn:aws:connect:%s:%s:", s.region, AccountID)
	switch {
	case name == "instance":
		return prefix + "instance/" + id
	case instanceID != "":
		return prefix + "instance/" + instanceID + "/" + coll.arnSegment + "/" + id
	default:
		return prefix + coll.arnSegment + "/" + id
	}
}

func (s *state) insert(name, key string, fields map[string]interface{}) *record {
	if s.records[name] == nil {
		s.records[name] = make(map[string]*record)
	}
	s.seq++
	rec := &record{seq: s.seq, fields: fields}
	s.records[name][key] = rec
	return rec
}

func (s *state) lookup(name, key string) (*record, bool) {
	rec, ok := s.records[name][key]
	return rec, ok
}

// find returns the record named by the request's idField. Records of another instance are not found.
func (s *state) find(c *call, name, idField string) (string, *record, error) {
	key := compositeKey(c.body, idField)
	rec, ok := s.lookup(name, key)
	if ok && name != "instance" {
		want, _ := c.body["InstanceId"].(string)
		have, _ := rec.fields["InstanceId"].(string)
		ok = want == "" || have == "" || want == have
	}
	if !ok {
		return "", nil, notFound(c.op, name, key)
	}
	return key, rec, nil
}

func (s *state) requireInstance(c *call) (string, error) {
	instanceID, _ := c.body["InstanceId"].(string)
	if instanceID == "" {
		return "", nil
	}
	if _, ok := s.lookup("instance", instanceID); !ok {
		return "", notFound(c.op, "instance", instanceID)
	}
	return instanceID, nil
}

// matching returns copies of the records of a collection that agree with every string field of
// the request the record also has, in insertion order.
func (s *state) matching(name string, body map[string]interface{}, keep func(map[string]interface{}) bool) []interface{} {
	recs := make([]*record, 0, len(s.records[name]))
	for _, rec := range s.records[name] {
		if agrees(rec.fields, body) && (keep == nil || keep(rec.fields)) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	out := make([]interface{}, 0, len(recs))
	for _, rec := range recs {
		out = append(out, copyFields(rec.fields))
	}
	return out
}

var nonFilterFields = map[string]bool{"NextToken": true, "ClientToken": true}

func agrees(fields, body map[string]interface{}) bool {
	for k, v := range body {
		want, ok := v.(string)
		if !ok || nonFilterFields[k] {
			continue
		}
		if have, ok := fields[k].(string); ok && have != want {
			return false
		}
	}
	return true
}

// page slices items by the request's NextToken and MaxResults.
func page(c *call, resultKey string, items []interface{}) (map[string]interface{}, error) {
	offset := 0
	if token, _ := c.body["NextToken"].(string); token != "" {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n > len(items) {
			return nil, newKindError(invalidKind(c.op), "invalid NextToken")
		}
		offset = n
	}
	size := defaultPageSize
	if v, ok := c.body["MaxResults"].(json.Number); ok {
		n, err := v.Int64()
		if err != nil || n < 1 || n > maxPageSize {
			return nil, newKindError(invalidKind(c.op), "MaxResults must be between 1 and 1000")
		}
		size = int(n)
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	resp := map[string]interface{}{resultKey: items[offset:end]}
	if end < len(items) {
		resp["NextToken"] = strconv.Itoa(end)
	}
	return resp, nil
}

func compositeKey(body map[string]interface{}, fields string) string {
	parts := strings.Split(fields, "+")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		values = append(values, fmt.Sprint(body[p]))
	}
	return strings.Join(values, "/")
}

func missingFields(body map[string]interface{}, required []string) []string {
	var missing []string
	for _, field := range required {
		if isEmpty(body[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isEmpty(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	default:
		return false
	}
}

func copyFields(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func stringMap(v interface{}) map[string]string {
	in, _ := v.(map[string]interface{})
	out := make(map[string]string, len(in))
	for k, v := range in {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func newKindError(kind connect.ErrorKind, message string) error {
	return errors.NewError(kind.ErrorType(), wparams.NewSafeAndUnsafeParamStorer(
		map[string]interface{}{"kind": string(kind)},
		map[string]interface{}{"message": message},
	))
}

// invalidKind is the kind op uses for malformed requests.
func invalidKind(op *connect.Operation) connect.ErrorKind {
	return firstDeclared(op, connect.KindInvalidParameter, connect.KindInvalidParameter, connect.KindInvalidRequest)
}

// notFound reports a missing resource with the not-found kind op declares, or as a malformed
// request when it declares none.
func notFound(op *connect.Operation, name, key string) error {
	kind := firstDeclared(op, invalidKind(op), connect.KindResourceNotFound, connect.KindContactNotFound, connect.KindUserNotFound)
	return newKindError(kind, fmt.Sprintf("%s %q not found", name, key))
}

func firstDeclared(op *connect.Operation, fallback connect.ErrorKind, kinds ...connect.ErrorKind) connect.ErrorKind {
	for _, k := range kinds {
		if op.Declares(k) {
			return k
		}
	}
	return fallback
}
