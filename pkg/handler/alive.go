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

// AliveResult answers a liveness probe for one connection handle.
type AliveResult struct {
	Socket string `json:"socket"`
	Alive  bool   `json:"alive"`
}

// AliveCheck reports whether the peer connection is still live. The probe
// always succeeds from the caller's perspective; internal failures are
// logged, demotions happen in the background, and the verdict rides in the
// reply data.
func (h *Handler) AliveCheck(ctx context.Context, env *models.FrameEnvelope) *models.ServiceResponse {
	if err := schema.ValidateEnvelope(env, false); err != nil {
		return &models.ServiceResponse{
			RetCode:     models.CodeInvalidData,
			Description: err.Error(),
		}
	}

	result := AliveResult{Socket: env.From, Alive: h.checkAlive(ctx, env.From)}

	return &models.ServiceResponse{
		RetCode:     models.CodeSuccess,
		Description: "Success.",
		Data:        mustJSON(result),
	}
}

// checkAlive applies the staleness policy: unknown device, missing
// connection record, or silence beyond the liveness window all mean dead.
// A stale but still CONNECTED device is demoted asynchronously.
func (h *Handler) checkAlive(ctx context.Context, socket string) bool {
	device, err := h.registry.FindBySocket(ctx, "", socket)
	if err != nil {
		h.logger.Error().Err(err).Str("socket", socket).Msg("Liveness lookup failed")
		return false
	}

	if device == nil || device.Extra.Connection == nil {
		return false
	}

	silence := h.opts.Now().UnixMilli() - device.Extra.Connection.LastTime
	if silence <= h.opts.LivenessWindow.Milliseconds() {
		return true
	}

	if device.Status.Network == models.NetworkConnected {
		h.emitter.Emit(models.EventNetworkUpdate, models.NetworkEventData{
			UUID:    device.UUID,
			Network: models.NetworkDisconnected,
		})

		h.demoteDisconnected(device.UUID)
	}

	return false
}
