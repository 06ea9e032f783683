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

package models

import (
	"encoding/json"
	"fmt"
)

// Logical collaborator service names, resolved to concrete endpoints by the
// service bus resolver.
const (
	ServiceDeviceManager = "device_manager"
	ServiceEventSource   = "event_source"
)

// Collaborator command names and codes.
const (
	CmdGetDevice          = "getDevice"
	CmdCodeGetDevice      = "0003"
	CmdAddDevice          = "addDevice"
	CmdCodeAddDevice      = "0001"
	CmdDeviceUpdate       = "deviceUpdate"
	CmdCodeDeviceUpdate   = "0004"
	CmdSaveEvent          = "save"
	CmdCodeSaveEvent      = "0001"
	CmdSetTemperature     = "set_temperature"
	CmdCodeSetTemperature = "0003"
)

// Response codes. Codes other than these pass through from collaborators.
const (
	CodeSuccess       = 200
	CodeLookupFailed  = 200003
	CodeInvalidData   = 217001
	CodeUnknownDevice = 217002
)

// Command is the payload of one collaborator RPC.
type Command struct {
	Name       string      `json:"cmdName"`
	Code       string      `json:"cmdCode"`
	Parameters interface{} `json:"parameters"`
}

// ServiceCall addresses a Command at a logical collaborator service.
type ServiceCall struct {
	Service string
	Payload Command
}

// ServiceResponse is the uniform collaborator reply envelope; the same shape
// is returned to the transport layer.
type ServiceResponse struct {
	RetCode     int             `json:"retCode"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the response carries a success code.
func (r *ServiceResponse) OK() bool {
	return r.RetCode == CodeSuccess
}

// StatusError is a terminal pipeline error carrying a response code.
type StatusError struct {
	Code        int
	Description string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Description)
}

// NewStatusError builds a StatusError for the given code and description.
func NewStatusError(code int, description string) *StatusError {
	return &StatusError{Code: code, Description: description}
}
