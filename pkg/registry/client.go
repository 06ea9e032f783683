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

// Package registry is the collaborator boundary to the authoritative device
// registry. It owns the translation between structured records/patches and
// the registry's sparse-path wire form; nothing outside this package builds
// path-string keys.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwarm/thermolink/pkg/models"
	"github.com/cloudwarm/thermolink/pkg/svcbus"
)

// client is the svcbus-backed registry Client.
type client struct {
	caller svcbus.Caller
}

// NewClient builds a registry Client over the service bus.
func NewClient(caller svcbus.Caller) Client {
	return &client{caller: caller}
}

func (c *client) FindByMAC(ctx context.Context, typeID, mac string) (*models.DeviceRecord, error) {
	return c.find(ctx, map[string]interface{}{
		"type.id":   typeID,
		"extra.mac": mac,
	})
}

func (c *client) FindBySocket(ctx context.Context, typeID, socket string) (*models.DeviceRecord, error) {
	condition := map[string]interface{}{
		"extra.connection.socket": socket,
	}
	if typeID != "" {
		condition["type.id"] = typeID
	}

	return c.find(ctx, condition)
}

// find issues a getDevice call. A success decodes to the first matching
// record; the fatal lookup code propagates as a StatusError; any other
// non-success is a tolerated miss.
func (c *client) find(ctx context.Context, condition map[string]interface{}) (*models.DeviceRecord, error) {
	resp, err := c.caller.Call(ctx, models.ServiceDeviceManager, models.Command{
		Name:       models.CmdGetDevice,
		Code:       models.CmdCodeGetDevice,
		Parameters: condition,
	})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.OK():
		return decodeDevice(resp.Data)
	case resp.RetCode == models.CodeLookupFailed:
		return nil, models.NewStatusError(resp.RetCode, resp.Description)
	default:
		return nil, nil
	}
}

// decodeDevice accepts the registry's reply data as either a single record
// or a result list, of which the first entry wins.
func decodeDevice(data json.RawMessage) (*models.DeviceRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []models.DeviceRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("invalid device list from registry: %w", err)
		}

		if len(records) == 0 {
			return nil, nil
		}

		return &records[0], nil
	}

	var record models.DeviceRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, fmt.Errorf("invalid device record from registry: %w", err)
	}

	return &record, nil
}

// CreateDeviceCall builds the addDevice mutation for a new record.
func CreateDeviceCall(record *models.DeviceRecord) *models.ServiceCall {
	return &models.ServiceCall{
		Service: models.ServiceDeviceManager,
		Payload: models.Command{
			Name:       models.CmdAddDevice,
			Code:       models.CmdCodeAddDevice,
			Parameters: record,
		},
	}
}

// UpdateDeviceCall builds the deviceUpdate mutation for a sparse patch.
func UpdateDeviceCall(patch *models.DevicePatch) *models.ServiceCall {
	return &models.ServiceCall{
		Service: models.ServiceDeviceManager,
		Payload: models.Command{
			Name:       models.CmdDeviceUpdate,
			Code:       models.CmdCodeDeviceUpdate,
			Parameters: UpdateParams(patch),
		},
	}
}
