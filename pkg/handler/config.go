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

package handler

import (
	"errors"
	"fmt"

	"github.com/cloudwarm/thermolink/pkg/logger"
	"github.com/cloudwarm/thermolink/pkg/models"
)

var (
	errSubjectPrefixRequired = errors.New("subject_prefix is required")
	errServiceRequired       = errors.New("service endpoints are required")
)

// Config is the frame-handler service configuration.
type Config struct {
	NATS          models.NATSConfig     `json:"nats"`
	Services      models.ServicesConfig `json:"services"`
	SubjectPrefix string                `json:"subject_prefix"`
	QueueGroup    string                `json:"queue_group,omitempty"`
	Logging       *logger.Config        `json:"logging,omitempty"`
}

// Validate ensures the configuration is complete enough to start.
func (c *Config) Validate() error {
	if err := c.NATS.Validate(); err != nil {
		return err
	}

	if c.SubjectPrefix == "" {
		return errSubjectPrefixRequired
	}

	for _, service := range []string{models.ServiceDeviceManager, models.ServiceEventSource} {
		if len(c.Services[service]) == 0 {
			return fmt.Errorf("%w: %s", errServiceRequired, service)
		}
	}

	return c.Services.Validate()
}
