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
	"bytes"
	"encoding/json"
	"fmt"
)

// ByteSeq is a raw payload byte sequence. Transport peers serialize it
// either as a JSON array of byte values or as a base64 string; both forms
// are accepted on decode.
type ByteSeq []byte

func (b *ByteSeq) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []int

		if err := json.Unmarshal(trimmed, &values); err != nil {
			return err
		}

		out := make([]byte, len(values))

		for i, v := range values {
			if v < 0 || v > 255 {
				return fmt.Errorf("byte value %d out of range at index %d", v, i)
			}

			out[i] = byte(v)
		}

		*b = out

		return nil
	}

	var std []byte
	if err := json.Unmarshal(trimmed, &std); err != nil {
		return err
	}

	*b = std

	return nil
}

func (b ByteSeq) MarshalJSON() ([]byte, error) {
	return json.Marshal([]byte(b))
}

// FrameEnvelope is the message shape delivered by the transport layer.
// From carries the connection handle; Data is present only on report and
// heartbeat frames.
type FrameEnvelope struct {
	From string        `json:"from"`
	Data *FramePayload `json:"data,omitempty"`
}

// FramePayload wraps the raw frame bytes.
type FramePayload struct {
	Data ByteSeq `json:"data"`
}

// TimerGroup is one weekday's worth of incoming sub-timers.
type TimerGroup struct {
	Week     int        `json:"week"`
	SubTimer []SubTimer `json:"sub_timer"`
}

// SubTimer is one incoming schedule slot.
type SubTimer struct {
	Index    int    `json:"index"`
	Time     string `json:"time"`
	TempHeat string `json:"temp_heat"`
}

// ErrorReport is a device exception frame.
type ErrorReport struct {
	MAC       string `json:"mac"`
	ErrorTime string `json:"errorTime"`
	ErrorID   string `json:"errorID"`
	ErrorMSG  string `json:"errorMSG"`
}

// DeviceReport is a full telemetry frame; all listed fields are mandatory,
// the default bounds and timers optional.
type DeviceReport struct {
	MAC                string       `json:"mac"`
	DevType            int          `json:"dev_type"`
	DisDevName         string       `json:"dis_dev_name"`
	DisTemp            string       `json:"dis_temp"`
	StatusOnOff        int          `json:"status_onoff"`
	TempHeat           string       `json:"temp_heat"`
	TempOut            string       `json:"temp_out"`
	TempComfort        string       `json:"temp_comfort"`
	TempEnergy         string       `json:"temp_energy"`
	HeatMode           int          `json:"heat_mode"`
	Status             int          `json:"status"`
	Encrypt            string       `json:"encrypt"`
	TempHeatDefaultMax *string      `json:"temp_heat_default_max,omitempty"`
	TempHeatDefaultMin *string      `json:"temp_heat_default_min,omitempty"`
	Timer              []TimerGroup `json:"timer,omitempty"`
}

// StateReport is an incremental telemetry frame; only mac is mandatory and
// every present field triggers an update of its stored counterpart.
type StateReport struct {
	MAC                string       `json:"mac"`
	DevType            *int         `json:"dev_type,omitempty"`
	DisDevName         *string      `json:"dis_dev_name,omitempty"`
	DisTemp            *string      `json:"dis_temp,omitempty"`
	StatusOnOff        *int         `json:"status_onoff,omitempty"`
	TempHeat           *string      `json:"temp_heat,omitempty"`
	TempOut            *string      `json:"temp_out,omitempty"`
	TempComfort        *string      `json:"temp_comfort,omitempty"`
	TempEnergy         *string      `json:"temp_energy,omitempty"`
	HeatMode           *int         `json:"heat_mode,omitempty"`
	Status             *int         `json:"status,omitempty"`
	Encrypt            *string      `json:"encrypt,omitempty"`
	TempHeatDefaultMax *string      `json:"temp_heat_default_max,omitempty"`
	TempHeatDefaultMin *string      `json:"temp_heat_default_min,omitempty"`
	Timer              []TimerGroup `json:"timer,omitempty"`
}
