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

	"github.com/cloudwarm/thermolink/pkg/models"
	"github.com/cloudwarm/thermolink/pkg/schema"
)

// Disconnected acknowledges a dropped connection immediately and reconciles
// the owning device in the background. Disconnect acknowledgment is
// deliberately decoupled from registry consistency.
func (h *Handler) Disconnected(_ context.Context, env *models.FrameEnvelope) *models.ServiceResponse {
	if err := schema.ValidateEnvelope(env, false); err != nil {
		return &models.ServiceResponse{
			RetCode:     models.CodeInvalidData,
			Description: err.Error(),
		}
	}

	h.spawn(func() {
		h.disconnectCleanup(env.From)
	})

	return successResponse()
}

// disconnectCleanup demotes the device owning the dropped connection. A
// lookup miss means the connection never mapped to a device; nothing to do.
func (h *Handler) disconnectCleanup(socket string) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	device, err := h.registry.FindBySocket(ctx, "", socket)
	if err != nil {
		h.logger.Error().Err(err).Str("socket", socket).Msg("Disconnect lookup failed")
		return
	}

	if device == nil || device.Status.Network != models.NetworkConnected {
		return
	}

	h.emitter.Emit(models.EventNetworkUpdate, models.NetworkEventData{
		UUID:    device.UUID,
		Network: models.NetworkDisconnected,
	})

	h.demoteDisconnected(device.UUID)
}
