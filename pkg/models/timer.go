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

const (
	TimerName       = "thermostat_timer"
	TimerModeSeries = "SERIES"
)

// TimerEntry is one slot of a device's weekly schedule. timerId is assigned
// once when the (weekday, index) pair is first seen and never changes; the
// merge engine updates between/commands in place thereafter.
type TimerEntry struct {
	TimerID  string         `json:"timerId"`
	Index    int            `json:"index"`
	Name     string         `json:"name"`
	Mode     string         `json:"mode"`
	Interval int            `json:"interval"`
	Between  []string       `json:"between"`
	Weekday  []int          `json:"weekday"`
	Commands []TimerCommand `json:"commands"`
}

// TimerCommand is the command descriptor embedded in a timer entry,
// addressed at the owning device.
type TimerCommand struct {
	UUID       string  `json:"uuid"`
	DeviceType string  `json:"deviceType"`
	Cmd        Command `json:"cmd"`
}

// SetTemperatureParams is the parameter block of the embedded
// set_temperature command. The heat mode is always forced to 2 (AUTO) by
// this device class's protocol.
type SetTemperatureParams struct {
	HeatMode int    `json:"heat_mode"`
	TempHeat string `json:"temp_heat"`
}
