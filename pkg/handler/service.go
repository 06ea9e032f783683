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
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/cloudwarm/thermolink/pkg/lifecycle"
	"github.com/cloudwarm/thermolink/pkg/logger"
	"github.com/cloudwarm/thermolink/pkg/models"
)

// operation is one transport-facing frame operation.
type operation func(ctx context.Context, env *models.FrameEnvelope) *models.ServiceResponse

// Service binds the handler's operations to NATS request-reply subjects.
// Each inbound message runs on its own goroutine as an independent pipeline
// instance and is replied to exactly once.
type Service struct {
	cfg     *Config
	nc      *nats.Conn
	handler *Handler
	logger  logger.Logger
	subs    []*nats.Subscription
}

// NewService builds the transport binding over an established connection.
func NewService(cfg *Config, nc *nats.Conn, h *Handler, log logger.Logger) *Service {
	return &Service{cfg: cfg, nc: nc, handler: h, logger: log}
}

// Start subscribes the three operations.
func (s *Service) Start(ctx context.Context) error {
	ops := map[string]operation{
		"handle":       s.handler.Handle,
		"disconnected": s.handler.Disconnected,
		"alivecheck":   s.handler.AliveCheck,
	}

	for name, op := range ops {
		subject := fmt.Sprintf("%s.%s", s.cfg.SubjectPrefix, name)

		sub, err := s.subscribe(ctx, subject, op)
		if err != nil {
			return fmt.Errorf("failed to subscribe %s: %w", subject, err)
		}

		s.subs = append(s.subs, sub)
	}

	s.logger.Info().
		Str("prefix", s.cfg.SubjectPrefix).
		Msg("Frame handler listening")

	return nil
}

func (s *Service) subscribe(ctx context.Context, subject string, op operation) (*nats.Subscription, error) {
	callback := func(msg *nats.Msg) {
		go s.dispatch(ctx, msg, op)
	}

	if s.cfg.QueueGroup != "" {
		return s.nc.QueueSubscribe(subject, s.cfg.QueueGroup, callback)
	}

	return s.nc.Subscribe(subject, callback)
}

// dispatch decodes the envelope, runs the operation and replies once.
func (s *Service) dispatch(ctx context.Context, msg *nats.Msg, op operation) {
	var env models.FrameEnvelope

	var resp *models.ServiceResponse

	if err := json.Unmarshal(msg.Data, &env); err != nil {
		resp = &models.ServiceResponse{
			RetCode:     models.CodeInvalidData,
			Description: "Invalid message envelope",
		}
	} else {
		resp = op(ctx, &env)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal reply")
		return
	}

	if err := msg.Respond(data); err != nil {
		s.logger.Error().Err(err).Str("subject", msg.Subject).Msg("Failed to reply")
	}
}

// Stop unsubscribes and waits out in-flight fire-and-forget work.
func (s *Service) Stop(_ context.Context) error {
	for _, sub := range s.subs {
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Warn().Err(err).Msg("Unsubscribe failed")
		}
	}

	s.subs = nil

	s.handler.Drain()

	return nil
}

var _ lifecycle.Service = (*Service)(nil)
