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

package errors

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/palantir/connect-go-sdk/connect-go-contract/codecs"
	werror "github.com/palantir/witchcraft-go-error"
)

var errorInterfaceType = reflect.TypeOf((*Error)(nil)).Elem()

// Registry maps error names to the concrete types used to deserialize them.
// Names without a registered type deserialize into a generic Error.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

func NewRegistry() *Registry {
	return new(Registry)
}

func (r *Registry) CopyFrom(other *Registry) error {
	other.mu.RLock()
	defer other.mu.RUnlock()
	for k, v := range other.types {
		if err := r.RegisterErrorType(k, v); err != nil {
			return err
		}
	}
	return nil
}

// RegisterErrorType registers the struct type whose pointer implements Error for the given error name.
func (r *Registry) RegisterErrorType(name string, typ reflect.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.types == nil {
		r.types = map[string]reflect.Type{}
	}
	if existing, exists := r.types[name]; exists {
		return fmt.Errorf("ErrorName %q already registered as %v", name, existing)
	}
	if ptr := reflect.PointerTo(typ); !ptr.Implements(errorInterfaceType) {
		return fmt.Errorf("Error type %v does not implement errors.Error interface", ptr)
	}
	r.types[name] = typ
	return nil
}

// UnmarshalJSONError deserializes body into the type registered for its errorName.
func (r *Registry) UnmarshalJSONError(ctx context.Context, body []byte) (Error, error) {
	var name struct {
		Name string `json:"errorName"`
	}
	if err := codecs.JSON.Unmarshal(body, &name); err != nil {
		return nil, werror.WrapWithContextParams(ctx, err, "failed to unmarshal body as conjure error")
	}
	typ := r.getErrorByName(name.Name)
	instance, ok := reflect.New(typ).Interface().(Error)
	if !ok {
		// Cast should never fail, as we've verified in RegisterErrorType
		return nil, werror.ErrorWithContextParams(ctx, "registered type does not implement Error interface", werror.SafeParam("type", typ.String()))
	}
	if err := codecs.JSON.Unmarshal(body, instance); err != nil {
		return nil, werror.WrapWithContextParams(ctx, err, "failed to unmarshal body using registered type", werror.SafeParam("type", typ.String()))
	}
	return instance, nil
}

func (r *Registry) getErrorByName(name string) reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if typ, ok := r.types[name]; ok {
		return typ
	}
	// Unrecognized error name, fall back to genericError
	return reflect.TypeOf(genericError{})
}

func MustRegisterErrorType(registry *Registry, name string, typ reflect.Type) {
	if err := registry.RegisterErrorType(name, typ); err != nil {
		panic(err)
	}
}
