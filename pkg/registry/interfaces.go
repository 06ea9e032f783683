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

package registry

//go:generate mockgen -destination=mock_registry.go -package=registry github.com/cloudwarm/thermolink/pkg/registry Client

import (
	"context"

	"github.com/cloudwarm/thermolink/pkg/models"
)

// Client resolves devices against the authoritative external registry.
// Lookups distinguish three outcomes: a device, a tolerated miss (nil, nil),
// and a fatal lookup failure (a StatusError carrying the upstream code).
type Client interface {
	// FindByMAC looks a device up by its hardware identity within a device
	// class.
	FindByMAC(ctx context.Context, typeID, mac string) (*models.DeviceRecord, error)

	// FindBySocket looks a device up by its live connection handle. typeID
	// may be empty to search across classes, as liveness probes and
	// disconnect notifications do.
	FindBySocket(ctx context.Context, typeID, socket string) (*models.DeviceRecord, error)
}
