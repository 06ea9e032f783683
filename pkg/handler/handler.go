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

// Package handler implements the HL device frame operations: report
// handling, disconnect reconciliation and liveness probes. One handler
// serves many concurrent frames; each frame runs its own pipeline instance
// and the handler keeps no mutable state between them.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/cloudwarm/thermolink/pkg/events"
	"github.com/cloudwarm/thermolink/pkg/logger"
	"github.com/cloudwarm/thermolink/pkg/models"
	"github.com/cloudwarm/thermolink/pkg/reconcile"
	"github.com/cloudwarm/thermolink/pkg/registry"
	"github.com/cloudwarm/thermolink/pkg/svcbus"
	"github.com/cloudwarm/thermolink/pkg/timers"
)

// Handler serves the three operations exposed to the transport layer.
type Handler struct {
	registry   registry.Client
	caller     svcbus.Caller
	emitter    events.Emitter
	classifier *reconcile.Classifier
	logger     logger.Logger
	opts       Options

	// wg tracks fire-and-forget work so Drain can wait it out on shutdown.
	wg sync.WaitGroup
}

// New builds a handler. The timer engine is shared with the classifier so
// tests can pin id generation in one place.
func New(reg registry.Client, caller svcbus.Caller, emitter events.Emitter, engine *timers.Engine, log logger.Logger, opts Options) *Handler {
	opts.withDefaults()

	classifier := reconcile.NewClassifier(engine, emitter, reconcile.Options{
		TypeID:        opts.TypeID,
		TypeName:      opts.TypeName,
		TemporaryUUID: opts.TemporaryUUID,
		Now:           opts.Now,
	})

	return &Handler{
		registry:   reg,
		caller:     caller,
		emitter:    emitter,
		classifier: classifier,
		logger:     log,
		opts:       opts,
	}
}

// Drain blocks until all in-flight fire-and-forget work has finished.
func (h *Handler) Drain() {
	h.wg.Wait()
}

// spawn runs fn on its own goroutine, tracked for Drain.
func (h *Handler) spawn(fn func()) {
	h.wg.Add(1)

	go func() {
		defer h.wg.Done()
		fn()
	}()
}

// successResponse is the default reply for a processed frame.
func successResponse() *models.ServiceResponse {
	return &models.ServiceResponse{
		RetCode:     models.CodeSuccess,
		Description: "Success.",
		Data:        mustJSON(successData),
	}
}

// errorResponse translates a pipeline error into the reply envelope.
// Status errors carry their own codes; anything else is an internal fault.
func errorResponse(err error) *models.ServiceResponse {
	var status *models.StatusError
	if errors.As(err, &status) {
		return &models.ServiceResponse{
			RetCode:     status.Code,
			Description: status.Description,
		}
	}

	return &models.ServiceResponse{
		RetCode:     500,
		Description: err.Error(),
	}
}

func mustJSON(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return data
}

// connectionStamp is the refreshed transport association recorded on every
// successful report or heartbeat.
func (h *Handler) connectionStamp(socket string) *models.Connection {
	return &models.Connection{
		Socket:   socket,
		LastTime: h.opts.Now().UnixMilli(),
	}
}

// demoteDisconnected clears a device's transport association and marks it
// DISCONNECTED, asynchronously. Shared by the disconnect handler and the
// liveness monitor.
func (h *Handler) demoteDisconnected(uuid string) {
	h.spawn(func() {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		call := registry.UpdateDeviceCall(&models.DevicePatch{
			UUID:            uuid,
			Network:         ptr(models.NetworkDisconnected),
			ClearConnection: true,
		})

		resp, err := h.caller.Call(ctx, call.Service, call.Payload)
		if err != nil {
			h.logger.Error().Err(err).Str("uuid", uuid).Msg("Disconnect update failed")
			return
		}

		if !resp.OK() {
			h.logger.Error().
				Int("ret_code", resp.RetCode).
				Str("description", resp.Description).
				Str("uuid", uuid).
				Msg("Disconnect update rejected")
		}
	})
}

func ptr[T any](v T) *T {
	return &v
}
