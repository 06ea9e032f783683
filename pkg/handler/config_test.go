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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwarm/thermolink/pkg/models"
)

func validConfig() *Config {
	return &Config{
		NATS: models.NATSConfig{URL: "nats://localhost:4222"},
		Services: models.ServicesConfig{
			models.ServiceDeviceManager: {"devices.manager"},
			models.ServiceEventSource:   {"devices.events"},
		},
		SubjectPrefix: "devices.hl",
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestConfigValidateRequiresNATSURL(t *testing.T) {
	cfg := validConfig()
	cfg.NATS.URL = ""

	require.Error(t, cfg.Validate())
}

func TestConfigValidateRequiresSubjectPrefix(t *testing.T) {
	cfg := validConfig()
	cfg.SubjectPrefix = ""

	assert.ErrorIs(t, cfg.Validate(), errSubjectPrefixRequired)
}

func TestConfigValidateRequiresCollaborators(t *testing.T) {
	cfg := validConfig()
	delete(cfg.Services, models.ServiceEventSource)

	err := cfg.Validate()
	require.ErrorIs(t, err, errServiceRequired)
	assert.Contains(t, err.Error(), models.ServiceEventSource)

	cfg = validConfig()
	cfg.Services[models.ServiceDeviceManager] = nil

	assert.ErrorIs(t, cfg.Validate(), errServiceRequired)
}
