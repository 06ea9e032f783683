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

// Package svcbus issues request-reply calls to collaborator services over
// NATS. Logical service names resolve to concrete subjects through a
// config-driven resolver.
package svcbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/cloudwarm/thermolink/pkg/logger"
	"github.com/cloudwarm/thermolink/pkg/models"
)

//go:generate mockgen -destination=mock_svcbus.go -package=svcbus github.com/cloudwarm/thermolink/pkg/svcbus Caller

// Caller sends one command to a logical collaborator service and awaits the
// uniform reply envelope.
type Caller interface {
	Call(ctx context.Context, service string, payload models.Command) (*models.ServiceResponse, error)
}

// requestEnvelope is the collaborator wire form: the resolved endpoint plus
// the command payload.
type requestEnvelope struct {
	Devices string         `json:"devices"`
	Payload models.Command `json:"payload"`
}

// Client is a NATS-backed Caller.
type Client struct {
	nc       *nats.Conn
	resolver Resolver
	logger   logger.Logger
}

// NewClient builds a Client over an established NATS connection.
func NewClient(nc *nats.Conn, resolver Resolver, log logger.Logger) *Client {
	return &Client{
		nc:       nc,
		resolver: resolver,
		logger:   log,
	}
}

// Call resolves service to a subject, issues a request and decodes the
// reply envelope. Transport or decode failures return an error; collaborator
// status codes are returned in the envelope untouched.
func (c *Client) Call(ctx context.Context, service string, payload models.Command) (*models.ServiceResponse, error) {
	subject, err := c.resolver.Resolve(service)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(requestEnvelope{Devices: subject, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request for %s: %w", service, err)
	}

	c.logger.Debug().
		Str("service", service).
		Str("subject", subject).
		Str("cmd", payload.Name).
		Msg("Issuing collaborator call")

	msg, err := c.nc.RequestWithContext(ctx, subject, data)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", service, err)
	}

	var resp models.ServiceResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("invalid reply from %s: %w", service, err)
	}

	return &resp, nil
}

var _ Caller = (*Client)(nil)
