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

// Package events records domain events with the event-log collaborator.
// Emission is fire-and-forget: outcomes are logged, never awaited by the
// caller, and never affect the caller's response.
package events

import (
	"context"
	"time"

	"github.com/cloudwarm/thermolink/pkg/logger"
	"github.com/cloudwarm/thermolink/pkg/models"
	"github.com/cloudwarm/thermolink/pkg/svcbus"
)

const emitTimeout = 10 * time.Second

// Emitter records one domain event without blocking the caller.
type Emitter interface {
	Emit(tag string, data interface{})
}

// Service is the svcbus-backed Emitter.
type Service struct {
	caller svcbus.Caller
	logger logger.Logger
}

// NewService builds an Emitter over the service bus.
func NewService(caller svcbus.Caller, log logger.Logger) *Service {
	return &Service{caller: caller, logger: log}
}

// Emit issues the save call on its own goroutine. Failures are logged and
// swallowed; the originating frame's response never depends on them.
func (s *Service) Emit(tag string, data interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()

		resp, err := s.caller.Call(ctx, models.ServiceEventSource, saveCommand(tag, data))
		if err != nil {
			s.logger.Warn().Err(err).Str("event_tag", tag).Msg("Event emission failed")
			return
		}

		if !resp.OK() {
			s.logger.Warn().
				Int("ret_code", resp.RetCode).
				Str("description", resp.Description).
				Str("event_tag", tag).
				Msg("Event emission rejected")
		}
	}()
}

// SaveEventCall builds the event-source save call for mutations that end a
// pipeline on the event write path, such as exception reports.
func SaveEventCall(tag string, data interface{}) *models.ServiceCall {
	return &models.ServiceCall{
		Service: models.ServiceEventSource,
		Payload: saveCommand(tag, data),
	}
}

func saveCommand(tag string, data interface{}) models.Command {
	return models.Command{
		Name: models.CmdSaveEvent,
		Code: models.CmdCodeSaveEvent,
		Parameters: models.EventRecord{
			EventTag:  tag,
			EventData: data,
		},
	}
}

var _ Emitter = (*Service)(nil)
