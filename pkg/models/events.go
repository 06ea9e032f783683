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

// Event tags recorded with the event-log collaborator.
const (
	EventNetworkUpdate = "EVENT_DEV_HL_UPDATE_NETWORK"
	EventException     = "EVENT_DEV_HL_EXCEPTION_REPORT"
	EventPowerStatus   = "EVENT_DEV_HL_POWER_STATUS_REPORT"
	EventHeatingMode   = "EVENT_DEV_HL_HEATING_MODE_REPORT"
	EventHeatingStatus = "EVENT_DEV_HL_HEATING_STATUS_REPORT"
)

// EventRecord is the parameter block of an event-source save command.
type EventRecord struct {
	EventTag  string      `json:"eventTag"`
	EventData interface{} `json:"eventData"`
}

// NetworkEventData reports a connectivity transition.
type NetworkEventData struct {
	UUID    string `json:"uuid"`
	Network string `json:"network"`
}

// ExceptionEventData reports a device-side error.
type ExceptionEventData struct {
	UUID      string `json:"uuid"`
	ErrorTime string `json:"errorTime"`
	ErrorID   string `json:"errorID"`
	ErrorMSG  string `json:"errorMSG"`
}

// PowerStatusEventData reports a switch transition.
type PowerStatusEventData struct {
	UUID  string `json:"uuid"`
	Power string `json:"power"`
}

// HeatingModeEventData reports a heating-mode transition. HeatMode carries
// the decoded label, not the raw code.
type HeatingModeEventData struct {
	UUID     string `json:"uuid"`
	HeatMode string `json:"heat_mode"`
}

// HeatingStatusEventData reports an operating-status transition.
type HeatingStatusEventData struct {
	UUID   string `json:"uuid"`
	Status int    `json:"status"`
}

// HeatModeLabel decodes the raw heat-mode code for event payloads. The
// stored record keeps the raw code; only emitted events use the label.
func HeatModeLabel(mode int) string {
	switch mode {
	case 1:
		return "AWAY"
	case 2:
		return "AUTO"
	default:
		return "MANUAL"
	}
}
