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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwarm/thermolink/pkg/models"
)

func TestResolveSingleEndpoint(t *testing.T) {
	resolver := NewStaticResolver(map[string][]string{
		models.ServiceDeviceManager: {"devices.manager"},
	})

	subject, err := resolver.Resolve(models.ServiceDeviceManager)
	require.NoError(t, err)
	assert.Equal(t, "devices.manager", subject)
}

func TestResolvePicksFromConfiguredReplicas(t *testing.T) {
	endpoints := []string{"devices.manager.a", "devices.manager.b", "devices.manager.c"}
	resolver := NewStaticResolver(map[string][]string{
		models.ServiceDeviceManager: endpoints,
	})

	for i := 0; i < 50; i++ {
		subject, err := resolver.Resolve(models.ServiceDeviceManager)
		require.NoError(t, err)
		assert.Contains(t, endpoints, subject)
	}
}

func TestResolveUnknownService(t *testing.T) {
	resolver := NewStaticResolver(map[string][]string{})

	_, err := resolver.Resolve("unconfigured")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnknownService)
	assert.Contains(t, err.Error(), "unconfigured")
}

func TestResolveEmptyEndpointList(t *testing.T) {
	resolver := NewStaticResolver(map[string][]string{
		models.ServiceEventSource: {},
	})

	_, err := resolver.Resolve(models.ServiceEventSource)
	require.ErrorIs(t, err, errUnknownService)
}
