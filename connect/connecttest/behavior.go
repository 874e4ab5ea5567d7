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
	"sort"
	"strings"

	"github.com/palantir/connect-go-sdk/connect"
	"github.com/palantir/pkg/uuid"
)

type call struct {
	op   *connect.Operation
	body map[string]interface{}
}

// behavior serves one operation. run returns the response body, or nil for an empty object.
type behavior struct {
	run      func(s *state, c *call) (interface{}, error)
	required []string
}

// require lists the request fields the service rejects when missing or empty.
func (b behavior) require(fields ...string) behavior {
	b.required = fields
	return b
}

// create stores the request as a new record and answers with its id and ARN under the
// response's field names. arnField is empty when the response carries no ARN.
func create(name, idField, arnField string) behavior {
	coll := collections[name]
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		var instanceID string
		if name != "instance" {
			var err error
			if instanceID, err = s.requireInstance(c); err != nil {
				return nil, err
			}
		}
		id := uuid.NewUUID().String()
		fields := copyFields(c.body)
		delete(fields, "ClientToken")
		fields["Id"] = id
		fields[coll.idKey] = id
		fields[idField] = id
		resp := map[string]interface{}{idField: id}

		if coll.arnSegment != "" {
			arn := s.arn(name, coll, instanceID, id)
			fields["Arn"] = arn
			if coll.arnKey != "" {
				fields[coll.arnKey] = arn
			}
			if arnField != "" {
				fields[arnField] = arn
				resp[arnField] = arn
			}
			s.arns[arn] = resourceRef{collection: name, key: id}
			if tags := stringMap(c.body["Tags"]); len(tags) > 0 {
				s.tags[arn] = tags
			}
		}
		s.insert(name, id, fields)
		return resp, nil
	}}
}

// describe answers with the record under resultKey, or as the whole response when resultKey is empty.
func describe(name, idField, resultKey string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		_, rec, err := s.find(c, name, idField)
		if err != nil {
			return nil, err
		}
		if resultKey == "" {
			return copyFields(rec.fields), nil
		}
		return map[string]interface{}{resultKey: copyFields(rec.fields)}, nil
	}}
}

func list(name, resultKey string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		return page(c, resultKey, s.matching(name, c.body, nil))
	}}
}

// search is list narrowed by the request's SearchCriteria and NameStartsWith.
func search(name, resultKey string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		criteria, _ := c.body["SearchCriteria"].(map[string]interface{})
		prefix, _ := c.body["NameStartsWith"].(string)
		items := s.matching(name, c.body, func(fields map[string]interface{}) bool {
			if prefix != "" && !strings.HasPrefix(nameOf(fields), prefix) {
				return false
			}
			return criteria == nil || matchesCriteria(fields, criteria)
		})
		resp, err := page(c, resultKey, items)
		if err != nil {
			return nil, err
		}
		resp["ApproximateTotalCount"] = len(items)
		return resp, nil
	}}
}

// update merges the request into an existing record and answers with the record.
func update(name, idField string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		_, rec, err := s.find(c, name, idField)
		if err != nil {
			return nil, err
		}
		merge(rec.fields, c.body)
		return copyFields(rec.fields), nil
	}}
}

// put merges the request into the record named by idField, creating it when absent.
func put(name, idField string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		if _, err := s.requireInstance(c); err != nil {
			return nil, err
		}
		key := compositeKey(c.body, idField)
		if rec, ok := s.lookup(name, key); ok {
			merge(rec.fields, c.body)
			return nil, nil
		}
		fields := copyFields(c.body)
		delete(fields, "ClientToken")
		s.insert(name, key, fields)
		return nil, nil
	}}
}

// remove deletes a record together with its tags.
func remove(name, idField string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		key, rec, err := s.find(c, name, idField)
		if err != nil {
			return nil, err
		}
		if arn, ok := rec.fields["Arn"].(string); ok {
			delete(s.arns, arn)
			delete(s.tags, arn)
		}
		delete(s.records[name], key)
		return nil, nil
	}}
}

// touch answers with an empty object if the record named by idField exists.
func touch(name, idField string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		if _, _, err := s.find(c, name, idField); err != nil {
			return nil, err
		}
		return nil, nil
	}}
}

// link adds the request's field value to a per-instance set.
func link(name, field string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		instanceID, err := s.requireInstance(c)
		if err != nil {
			return nil, err
		}
		value, _ := c.body[field].(string)
		if s.links[name] == nil {
			s.links[name] = make(map[string]map[string]struct{})
		}
		if s.links[name][instanceID] == nil {
			s.links[name][instanceID] = make(map[string]struct{})
		}
		s.links[name][instanceID][value] = struct{}{}
		return nil, nil
	}}
}

func unlink(name, field string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		instanceID, err := s.requireInstance(c)
		if err != nil {
			return nil, err
		}
		value, _ := c.body[field].(string)
		if _, ok := s.links[name][instanceID][value]; !ok {
			return nil, notFound(c.op, name, value)
		}
		delete(s.links[name][instanceID], value)
		return nil, nil
	}}
}

func links(name, resultKey string) behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		instanceID, err := s.requireInstance(c)
		if err != nil {
			return nil, err
		}
		values := make([]string, 0, len(s.links[name][instanceID]))
		for v := range s.links[name][instanceID] {
			values = append(values, v)
		}
		sort.Strings(values)
		items := make([]interface{}, 0, len(values))
		for _, v := range values {
			items = append(items, v)
		}
		return page(c, resultKey, items)
	}}
}

func tag() behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		arn, err := s.taggable(c)
		if err != nil {
			return nil, err
		}
		if s.tags[arn] == nil {
			s.tags[arn] = make(map[string]string)
		}
		for k, v := range stringMap(c.body["Tags"]) {
			s.tags[arn][k] = v
		}
		return nil, nil
	}}
}

func untag() behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		arn, err := s.taggable(c)
		if err != nil {
			return nil, err
		}
		keys, _ := c.body["TagKeys"].([]interface{})
		for _, k := range keys {
			if key, ok := k.(string); ok {
				delete(s.tags[arn], key)
			}
		}
		return nil, nil
	}}
}

func listtags() behavior {
	return behavior{run: func(s *state, c *call) (interface{}, error) {
		arn, err := s.taggable(c)
		if err != nil {
			return nil, err
		}
		tags := make(map[string]string, len(s.tags[arn]))
		for k, v := range s.tags[arn] {
			tags[k] = v
		}
		return map[string]interface{}{"Tags": tags}, nil
	}}
}

// noop answers every well-formed request with an empty object.
func noop() behavior {
	return behavior{run: func(*state, *call) (interface{}, error) {
		return nil, nil
	}}
}

func (s *state) taggable(c *call) (string, error) {
	arn, _ := c.body["ResourceArn"].(string)
	if _, ok := s.arns[arn]; !ok {
		return "", notFound(c.op, "resource", arn)
	}
	return arn, nil
}

func merge(fields, body map[string]interface{}) {
	for k, v := range body {
		if k == "ClientToken" {
			continue
		}
		fields[k] = v
	}
}

func nameOf(fields map[string]interface{}) string {
	for _, k := range []string{"Name", "VocabularyName", "SecurityProfileName"} {
		if name, ok := fields[k].(string); ok {
			return name
		}
	}
	return ""
}

func matchesCriteria(fields, criteria map[string]interface{}) bool {
	if cond, ok := criteria["StringCondition"].(map[string]interface{}); ok && !matchesString(fields, cond) {
		return false
	}
	if ors, ok := criteria["OrConditions"].([]interface{}); ok && len(ors) > 0 {
		matched := false
		for _, o := range ors {
			if sub, ok := o.(map[string]interface{}); ok && matchesCriteria(fields, sub) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if ands, ok := criteria["AndConditions"].([]interface{}); ok {
		for _, a := range ands {
			if sub, ok := a.(map[string]interface{}); ok && !matchesCriteria(fields, sub) {
				return false
			}
		}
	}
	return true
}

// matchesString compares one field, located case-insensitively ("name" matches "Name").
func matchesString(fields, cond map[string]interface{}) bool {
	fieldName, _ := cond["FieldName"].(string)
	value, _ := cond["Value"].(string)
	comparison, _ := cond["ComparisonType"].(string)
	var actual string
	for k, v := range fields {
		if strings.EqualFold(k, fieldName) {
			actual, _ = v.(string)
			break
		}
	}
	switch strings.ToUpper(comparison) {
	case "STARTS_WITH":
		return strings.HasPrefix(actual, value)
	case "CONTAINS":
		return strings.Contains(actual, value)
	default:
		return actual == value
	}
}
