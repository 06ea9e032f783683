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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudwarm/thermolink/pkg/models"
)

func TestDisconnectedRejectsMissingSocket(t *testing.T) {
	fix := newFixture(t)

	resp := fix.handler.Disconnected(context.Background(), &models.FrameEnvelope{})
	assert.Equal(t, models.CodeInvalidData, resp.RetCode)
}

func TestDisconnectedConnectedDevice(t *testing.T) {
	fix := newFixture(t)

	fix.registry.EXPECT().
		FindBySocket(gomock.Any(), "", testSocket).
		Return(connectedDevice(), nil)

	var got models.Command

	fix.caller.EXPECT().
		Call(gomock.Any(), models.ServiceDeviceManager, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload models.Command) (*models.ServiceResponse, error) {
			got = payload
			return okResponse(), nil
		})

	resp := fix.handler.Disconnected(context.Background(), &models.FrameEnvelope{From: testSocket})
	assert.Equal(t, models.CodeSuccess, resp.RetCode)

	fix.handler.Drain()

	assert.Equal(t, models.CmdDeviceUpdate, got.Name)

	params, ok := got.Parameters.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dev-1", params["uuid"])
	assert.Equal(t, models.NetworkDisconnected, params["status.network"])
	require.Contains(t, params, "extra.connection")
	assert.Nil(t, params["extra.connection"])

	emitted := fix.recorder.Events()
	require.Len(t, emitted, 1)
	assert.Equal(t, models.EventNetworkUpdate, emitted[0].Tag)
	assert.Equal(t, models.NetworkEventData{UUID: "dev-1", Network: models.NetworkDisconnected}, emitted[0].Data)
}

func TestDisconnectedUnknownSocket(t *testing.T) {
	fix := newFixture(t)

	fix.registry.EXPECT().
		FindBySocket(gomock.Any(), "", testSocket).
		Return(nil, nil)

	resp := fix.handler.Disconnected(context.Background(), &models.FrameEnvelope{From: testSocket})
	assert.Equal(t, models.CodeSuccess, resp.RetCode)

	fix.handler.Drain()
	assert.Empty(t, fix.recorder.Events())
}

func TestDisconnectedAlreadyDisconnectedDevice(t *testing.T) {
	fix := newFixture(t)

	device := connectedDevice()
	device.Status.Network = models.NetworkDisconnected

	fix.registry.EXPECT().
		FindBySocket(gomock.Any(), "", testSocket).
		Return(device, nil)

	resp := fix.handler.Disconnected(context.Background(), &models.FrameEnvelope{From: testSocket})
	assert.Equal(t, models.CodeSuccess, resp.RetCode)

	fix.handler.Drain()
	assert.Empty(t, fix.recorder.Events())
}

func TestDisconnectedLookupFailureStaysSilent(t *testing.T) {
	fix := newFixture(t)

	fix.registry.EXPECT().
		FindBySocket(gomock.Any(), "", testSocket).
		Return(nil, errors.New("registry down"))

	resp := fix.handler.Disconnected(context.Background(), &models.FrameEnvelope{From: testSocket})
	assert.Equal(t, models.CodeSuccess, resp.RetCode)

	fix.handler.Drain()
	assert.Empty(t, fix.recorder.Events())
}
