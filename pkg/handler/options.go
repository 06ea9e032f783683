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

import "time"

const (
	// DefaultTypeID identifies the HL thermostat/water-heater device class
	// in the registry.
	DefaultTypeID = "050608070001"

	// DefaultTypeName is the display name stamped on created records.
	DefaultTypeName = "HL-Thermostat"

	// DefaultTemporaryUUID is the placeholder embedded in timer commands on
	// the create path; the registry assigns the real uuid on creation.
	DefaultTemporaryUUID = "xxxx-temporary-uuid-xxxx"

	// HeartbeatSentinel is the literal payload of a keep-alive frame.
	HeartbeatSentinel = "__heartbeat__"

	// DefaultLivenessWindow is the maximum silence before a connection is
	// declared stale.
	DefaultLivenessWindow = 2 * time.Minute

	// successData is the default success reply payload.
	successData = `{"result":"ok"}`
)

// Options are the device-class constants and policies of one handler
// instance, injected at construction.
type Options struct {
	TypeID         string
	TypeName       string
	TemporaryUUID  string
	LivenessWindow time.Duration

	// Now is injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (o *Options) withDefaults() {
	if o.TypeID == "" {
		o.TypeID = DefaultTypeID
	}

	if o.TypeName == "" {
		o.TypeName = DefaultTypeName
	}

	if o.TemporaryUUID == "" {
		o.TemporaryUUID = DefaultTemporaryUUID
	}

	if o.LivenessWindow <= 0 {
		o.LivenessWindow = DefaultLivenessWindow
	}

	if o.Now == nil {
		o.Now = time.Now
	}
}
