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

package models

import (
	"errors"
	"fmt"
)

var (
	errNATSURLRequired  = errors.New("nats url is required")
	errServiceEndpoints = errors.New("service has no endpoints")
)

// NATSConfig configures NATS connectivity
type NATSConfig struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Validate ensures the NATS configuration is valid
func (c *NATSConfig) Validate() error {
	if c.URL == "" {
		return errNATSURLRequired
	}

	return nil
}

// ServicesConfig maps logical collaborator service names to the NATS
// subjects that serve them. Requests pick one subject at random per call.
type ServicesConfig map[string][]string

// Validate ensures every configured service has at least one endpoint.
func (c ServicesConfig) Validate() error {
	for name, endpoints := range c {
		if len(endpoints) == 0 {
			return fmt.Errorf("%w: %s", errServiceEndpoints, name)
		}
	}

	return nil
}
