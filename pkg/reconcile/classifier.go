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

// Package reconcile classifies decoded report frames against the resolved
// registry record and builds the corresponding registry mutation. Message
// kinds are tried in strict precedence: error_report, then device_report,
// then state_report; the first contract the payload satisfies wins.
package reconcile

import (
	"time"

	"github.com/cloudwarm/thermolink/pkg/events"
	"github.com/cloudwarm/thermolink/pkg/models"
	"github.com/cloudwarm/thermolink/pkg/registry"
	"github.com/cloudwarm/thermolink/pkg/schema"
	"github.com/cloudwarm/thermolink/pkg/timers"
)

// Options carries the device-class constants the classifier stamps into
// records and mutations.
type Options struct {
	TypeID   string
	TypeName string

	// TemporaryUUID is embedded in timer commands on the create path; the
	// registry assigns the real uuid when it stores the record.
	TemporaryUUID string

	// Now is injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// Classifier turns one decoded payload plus an optional existing record
// into exactly one registry mutation, a terminal event write, or nothing.
type Classifier struct {
	timers  *timers.Engine
	emitter events.Emitter
	opts    Options
}

// NewClassifier builds a Classifier.
func NewClassifier(engine *timers.Engine, emitter events.Emitter, opts Options) *Classifier {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Classifier{timers: engine, emitter: emitter, opts: opts}
}

// Classify inspects raw and produces the mutation to ship. A nil call with
// a nil error means "respond success, write nothing". Side-effect events
// for observed transitions are emitted through the Emitter and never affect
// the returned values.
func (c *Classifier) Classify(raw []byte, socket string, device *models.DeviceRecord) (*models.ServiceCall, error) {
	if report, err := schema.DecodeErrorReport(raw); err == nil {
		return c.classifyError(report, device), nil
	}

	if report, err := schema.DecodeDeviceReport(raw); err == nil {
		if device == nil {
			return registry.CreateDeviceCall(c.buildRecord(report, socket)), nil
		}

		return registry.UpdateDeviceCall(c.buildFullPatch(report, socket, device)), nil
	} else if device == nil {
		return nil, models.NewStatusError(models.CodeUnknownDevice, "Can not find the device.")
	}

	report, err := schema.DecodeStateReport(raw)
	if err != nil {
		return nil, models.NewStatusError(models.CodeInvalidData, "Invalid TCP data")
	}

	return registry.UpdateDeviceCall(c.buildPartialPatch(report, socket, device)), nil
}

// classifyError records an exception event only for a device with a known
// owner; error reports for unknown or ownerless devices are dropped as
// successful no-ops.
func (c *Classifier) classifyError(report *models.ErrorReport, device *models.DeviceRecord) *models.ServiceCall {
	if device == nil || device.UserID == "" {
		return nil
	}

	return events.SaveEventCall(models.EventException, models.ExceptionEventData{
		UUID:      device.UUID,
		ErrorTime: report.ErrorTime,
		ErrorID:   report.ErrorID,
		ErrorMSG:  report.ErrorMSG,
	})
}

// buildRecord assembles a full DeviceRecord for a first-seen mac.
func (c *Classifier) buildRecord(report *models.DeviceReport, socket string) *models.DeviceRecord {
	record := &models.DeviceRecord{
		Name: report.DisDevName,
		Status: models.DeviceStatus{
			Switch:  switchState(report.StatusOnOff),
			Network: models.NetworkConnected,
		},
		Type: models.DeviceType{
			ID:   c.opts.TypeID,
			Name: c.opts.TypeName,
			Icon: "",
		},
		Extra: models.DeviceExtra{
			MAC:         report.MAC,
			DevType:     report.DevType,
			DisDevName:  report.DisDevName,
			StatusOnOff: report.StatusOnOff,
			Encrypt:     report.Encrypt,
			Items: &models.TelemetryItems{
				DisTemp:     report.DisTemp,
				TempHeat:    report.TempHeat,
				TempOut:     report.TempOut,
				TempComfort: report.TempComfort,
				TempEnergy:  report.TempEnergy,
				HeatMode:    report.HeatMode,
				Status:      report.Status,
			},
			Timers: c.timers.Convert(report.Timer, c.opts.TemporaryUUID, c.opts.TypeID),
			Connection: &models.Connection{
				Socket:   socket,
				LastTime: c.opts.Now().UnixMilli(),
			},
		},
	}

	if report.TempHeatDefaultMax != nil {
		record.Extra.TempHeatDefaultMax = *report.TempHeatDefaultMax
	}

	if report.TempHeatDefaultMin != nil {
		record.Extra.TempHeatDefaultMin = *report.TempHeatDefaultMin
	}

	return record
}

// buildFullPatch translates a full report for a known device into a sparse
// update carrying the complete telemetry field set. Incoming timers merge
// against the record's current list; an absent timer block writes an
// explicit null.
func (c *Classifier) buildFullPatch(report *models.DeviceReport, socket string, device *models.DeviceRecord) *models.DevicePatch {
	patch := &models.DevicePatch{
		UUID:        device.UUID,
		Switch:      ptr(switchState(report.StatusOnOff)),
		Network:     ptr(models.NetworkConnected),
		MAC:         &report.MAC,
		DevType:     &report.DevType,
		DisDevName:  &report.DisDevName,
		StatusOnOff: &report.StatusOnOff,
		Encrypt:     &report.Encrypt,
		Connection: &models.Connection{
			Socket:   socket,
			LastTime: c.opts.Now().UnixMilli(),
		},
		DisTemp:            &report.DisTemp,
		TempHeat:           &report.TempHeat,
		TempOut:            &report.TempOut,
		TempComfort:        &report.TempComfort,
		TempEnergy:         &report.TempEnergy,
		HeatMode:           &report.HeatMode,
		Status:             &report.Status,
		TempHeatDefaultMax: report.TempHeatDefaultMax,
		TempHeatDefaultMin: report.TempHeatDefaultMin,
	}

	var merged []models.TimerEntry
	if report.Timer != nil {
		merged = c.timers.Merge(device.Extra.Timers, report.Timer, device.UUID, c.opts.TypeID)
	}

	patch.Timers = &merged

	return patch
}

// buildPartialPatch includes only the fields present in the state report.
// Observed transitions of switch state, heating mode and operating status
// each emit their own domain event.
func (c *Classifier) buildPartialPatch(report *models.StateReport, socket string, device *models.DeviceRecord) *models.DevicePatch {
	patch := &models.DevicePatch{
		UUID:    device.UUID,
		Network: ptr(models.NetworkConnected),
		MAC:     &report.MAC,
		Connection: &models.Connection{
			Socket:   socket,
			LastTime: c.opts.Now().UnixMilli(),
		},
	}

	if report.StatusOnOff != nil {
		state := switchState(*report.StatusOnOff)
		patch.Switch = &state
		patch.StatusOnOff = report.StatusOnOff

		if device.Status.Switch != state {
			c.emitter.Emit(models.EventPowerStatus, models.PowerStatusEventData{
				UUID:  device.UUID,
				Power: state,
			})
		}
	}

	patch.DevType = report.DevType
	patch.Encrypt = report.Encrypt
	patch.DisTemp = report.DisTemp
	patch.TempHeat = report.TempHeat
	patch.TempOut = report.TempOut
	patch.TempComfort = report.TempComfort
	patch.TempEnergy = report.TempEnergy

	if report.HeatMode != nil {
		patch.HeatMode = report.HeatMode

		if device.Extra.Items != nil && device.Extra.Items.HeatMode != *report.HeatMode {
			c.emitter.Emit(models.EventHeatingMode, models.HeatingModeEventData{
				UUID:     device.UUID,
				HeatMode: models.HeatModeLabel(*report.HeatMode),
			})
		}
	}

	if report.Status != nil {
		patch.Status = report.Status

		if device.Extra.Items != nil && device.Extra.Items.Status != *report.Status {
			c.emitter.Emit(models.EventHeatingStatus, models.HeatingStatusEventData{
				UUID:   device.UUID,
				Status: *report.Status,
			})
		}
	}

	patch.TempHeatDefaultMax = report.TempHeatDefaultMax
	patch.TempHeatDefaultMin = report.TempHeatDefaultMin

	if report.Timer != nil {
		merged := c.timers.Merge(device.Extra.Timers, report.Timer, device.UUID, c.opts.TypeID)
		patch.Timers = &merged
	}

	return patch
}

func switchState(statusOnOff int) string {
	if statusOnOff == 0 {
		return models.SwitchOff
	}

	return models.SwitchOn
}

func ptr[T any](v T) *T {
	return &v
}
