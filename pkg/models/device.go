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

// Switch states for status.switch.
const (
	SwitchOn  = "ON"
	SwitchOff = "OFF"
)

// Network states for status.network.
const (
	NetworkConnected    = "CONNECTED"
	NetworkDisconnected = "DISCONNECTED"
)

// DeviceRecord is the registry's authoritative record for one device. This
// service only ever holds request-scoped copies; the registry assigns the
// uuid on creation.
type DeviceRecord struct {
	UUID   string       `json:"uuid,omitempty"`
	UserID string       `json:"userId,omitempty"`
	Name   string       `json:"name"`
	Status DeviceStatus `json:"status"`
	Type   DeviceType   `json:"type"`
	Extra  DeviceExtra  `json:"extra"`
}

type DeviceStatus struct {
	Switch  string `json:"switch"`
	Network string `json:"network"`
}

type DeviceType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DeviceExtra carries the device-class specific portion of the record.
// Timers may be an explicit null in the registry; Items and Connection may
// be absent entirely.
type DeviceExtra struct {
	MAC                string          `json:"mac"`
	DevType            int             `json:"dev_type"`
	DisDevName         string          `json:"dis_dev_name"`
	StatusOnOff        int             `json:"status_onoff"`
	Encrypt            string          `json:"encrypt"`
	Items              *TelemetryItems `json:"items,omitempty"`
	Timers             []TimerEntry    `json:"timers"`
	Connection         *Connection     `json:"connection,omitempty"`
	TempHeatDefaultMax string          `json:"temp_heat_default_max,omitempty"`
	TempHeatDefaultMin string          `json:"temp_heat_default_min,omitempty"`
}

// TelemetryItems holds the scalar telemetry fields. heat_mode and status
// keep the raw numeric codes as reported by the device.
type TelemetryItems struct {
	DisTemp     string `json:"dis_temp"`
	TempHeat    string `json:"temp_heat"`
	TempOut     string `json:"temp_out"`
	TempComfort string `json:"temp_comfort"`
	TempEnergy  string `json:"temp_energy"`
	HeatMode    int    `json:"heat_mode"`
	Status      int    `json:"status"`
}

// Connection records the live transport association for a device. LastTime
// is wall-clock milliseconds of the most recent successful report.
type Connection struct {
	Socket   string `json:"socket"`
	LastTime int64  `json:"lastTime"`
}
