/*
 * Copyright 2025 CloudWarm Labs.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package svcbus

import (
	"errors"
	"fmt"
	"math/rand"
)

var errUnknownService = errors.New("unknown service")

// Resolver maps a logical service name to a concrete endpoint.
type Resolver interface {
	Resolve(service string) (string, error)
}

// StaticResolver resolves from a fixed name-to-endpoints table, picking one
// endpoint at random per call to spread load across replicas.
type StaticResolver struct {
	services map[string][]string
}

// NewStaticResolver builds a resolver over the configured service table.
func NewStaticResolver(services map[string][]string) *StaticResolver {
	return &StaticResolver{services: services}
}

// Resolve implements Resolver.
func (r *StaticResolver) Resolve(service string) (string, error) {
	endpoints := r.services[service]
	if len(endpoints) == 0 {
		return "", fmt.Errorf("%w: %s", errUnknownService, service)
	}

	return endpoints[rand.Intn(len(endpoints))], nil
}
