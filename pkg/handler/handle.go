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
	"encoding/json"
	"time"

	"github.com/cloudwarm/thermolink/pkg/models"
	"github.com/cloudwarm/thermolink/pkg/pipeline"
	"github.com/cloudwarm/thermolink/pkg/registry"
	"github.com/cloudwarm/thermolink/pkg/schema"
)

// callTimeout bounds fire-and-forget collaborator calls.
const callTimeout = 10 * time.Second

// frameState is the flow value threaded through the report pipeline.
type frameState struct {
	from      string
	raw       []byte
	heartbeat bool
	device    *models.DeviceRecord
	resp      *models.ServiceResponse
}

// reportFlow binds the pipeline types for report/heartbeat frames: stages
// pass the frame state along and terminate with the mutation to ship, nil
// for a no-op success.
var reportFlow pipeline.Flow[*frameState, *models.ServiceCall]

// Handle processes one report or heartbeat frame end to end and returns the
// reply envelope. Collaborator failures on the terminal write path surface
// as the reply code; all opportunistic side effects are fire-and-forget.
func (h *Handler) Handle(ctx context.Context, env *models.FrameEnvelope) *models.ServiceResponse {
	if err := schema.ValidateEnvelope(env, true); err != nil {
		return &models.ServiceResponse{
			RetCode:     models.CodeInvalidData,
			Description: err.Error(),
		}
	}

	resp := successResponse()

	raw := []byte(env.Data.Data)
	heartbeat := string(raw) == HeartbeatSentinel

	if !heartbeat && !json.Valid(raw) {
		h.logger.Warn().Str("payload", string(raw)).Msg("Undecodable frame payload")

		return &models.ServiceResponse{
			RetCode:     models.CodeInvalidData,
			Description: "Invalid TCP data",
		}
	}

	state := &frameState{
		from:      env.From,
		raw:       raw,
		heartbeat: heartbeat,
		resp:      resp,
	}

	call, err := reportFlow.Run(ctx, state,
		h.resolveDevice,
		h.promoteNetwork,
		h.heartbeatBranch,
		h.classify,
	)
	if err != nil {
		return errorResponse(err)
	}

	if call != nil {
		h.write(ctx, call, resp)
	}

	return resp
}

// resolveDevice looks the frame's device up: heartbeats key on the
// connection handle, data frames on the reported mac. A lookup miss is not
// fatal here; later stages decide what an unknown device means.
func (h *Handler) resolveDevice(ctx context.Context, state *frameState) pipeline.Result[*frameState, *models.ServiceCall] {
	var (
		device *models.DeviceRecord
		err    error
	)

	if state.heartbeat {
		device, err = h.registry.FindBySocket(ctx, h.opts.TypeID, state.from)
	} else {
		device, err = h.registry.FindByMAC(ctx, h.opts.TypeID, reportedMAC(state.raw))
	}

	if err != nil {
		return reportFlow.Fail(err)
	}

	state.device = device

	return reportFlow.Continue(state)
}

// promoteNetwork opportunistically announces a DISCONNECTED device coming
// back; the event never blocks the pipeline.
func (h *Handler) promoteNetwork(_ context.Context, state *frameState) pipeline.Result[*frameState, *models.ServiceCall] {
	if state.device != nil && state.device.Status.Network == models.NetworkDisconnected {
		h.emitter.Emit(models.EventNetworkUpdate, models.NetworkEventData{
			UUID:    state.device.UUID,
			Network: models.NetworkConnected,
		})
	}

	return reportFlow.Continue(state)
}

// heartbeatBranch short-circuits keep-alive frames: a known device gets a
// refreshed connection stamp, an unknown one is acknowledged without any
// registry write.
func (h *Handler) heartbeatBranch(_ context.Context, state *frameState) pipeline.Result[*frameState, *models.ServiceCall] {
	if !state.heartbeat {
		return reportFlow.Continue(state)
	}

	state.resp.Data = mustJSON(HeartbeatSentinel)

	if state.device == nil {
		return reportFlow.Terminate(nil)
	}

	return reportFlow.Terminate(registry.UpdateDeviceCall(&models.DevicePatch{
		UUID:       state.device.UUID,
		Network:    ptr(models.NetworkConnected),
		Connection: h.connectionStamp(state.from),
	}))
}

// classify hands data frames to the reconciliation classifier; all of its
// outcomes terminate the pipeline.
func (h *Handler) classify(_ context.Context, state *frameState) pipeline.Result[*frameState, *models.ServiceCall] {
	call, err := h.classifier.Classify(state.raw, state.from, state.device)
	if err != nil {
		h.logger.Warn().Err(err).Str("payload", string(state.raw)).Msg("Frame classification failed")

		return reportFlow.Fail(err)
	}

	return reportFlow.Terminate(call)
}

// write ships the terminal mutation; a collaborator failure here replaces
// the reply code.
func (h *Handler) write(ctx context.Context, call *models.ServiceCall, resp *models.ServiceResponse) {
	wireResp, err := h.caller.Call(ctx, call.Service, call.Payload)
	if err != nil {
		resp.RetCode = 500
		resp.Description = err.Error()
		resp.Data = nil

		return
	}

	if !wireResp.OK() {
		resp.RetCode = wireResp.RetCode
		resp.Description = wireResp.Description
	}
}

// reportedMAC extracts the mac from a data frame for registry lookup. An
// absent or malformed field looks up as empty and simply misses.
func reportedMAC(raw []byte) string {
	var probe struct {
		MAC string `json:"mac"`
	}

	_ = json.Unmarshal(raw, &probe)

	return probe.MAC
}
