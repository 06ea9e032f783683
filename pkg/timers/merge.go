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

// Package timers merges incoming weekly sub-timer schedules into a device's
// timer list.
package timers

import (
	"github.com/google/uuid"

	"github.com/cloudwarm/thermolink/pkg/models"
)

// timerHeatMode is the heating mode embedded in every generated timer
// command. The device protocol fixes it to 2 (AUTO) regardless of report
// content.
const timerHeatMode = 2

// Engine generates and merges timer entries. NewID is injectable so tests
// can pin generated identifiers.
type Engine struct {
	NewID func() string
}

// NewEngine returns an Engine generating random uuids for new entries.
func NewEngine() *Engine {
	return &Engine{NewID: uuid.NewString}
}

// Convert builds a timer list from incoming groups alone, as on device
// creation. A nil incoming list yields nil, which the registry stores as an
// explicit null.
func (e *Engine) Convert(incoming []models.TimerGroup, ownerUUID, deviceType string) []models.TimerEntry {
	if incoming == nil {
		return nil
	}

	return e.Merge(nil, incoming, ownerUUID, deviceType)
}

// Merge folds incoming weekly entries into existing. An entry whose weekday
// list contains the incoming week and whose index matches is updated in
// place, keeping its timerId; anything else appends a new entry. No two
// entries ever share a (weekday, index) pair as a result.
func (e *Engine) Merge(existing []models.TimerEntry, incoming []models.TimerGroup, ownerUUID, deviceType string) []models.TimerEntry {
	merged := existing

	for _, group := range incoming {
		for _, sub := range group.SubTimer {
			if i := findEntry(merged, group.Week, sub.Index); i >= 0 {
				merged[i].Between = []string{sub.Time}
				merged[i].Commands = []models.TimerCommand{e.command(ownerUUID, deviceType, sub.TempHeat)}

				continue
			}

			merged = append(merged, models.TimerEntry{
				TimerID:  e.NewID(),
				Index:    sub.Index,
				Name:     models.TimerName,
				Mode:     models.TimerModeSeries,
				Interval: 0,
				Between:  []string{sub.Time},
				Weekday:  []int{group.Week},
				Commands: []models.TimerCommand{e.command(ownerUUID, deviceType, sub.TempHeat)},
			})
		}
	}

	return merged
}

func findEntry(entries []models.TimerEntry, week, index int) int {
	for i := range entries {
		if entries[i].Index != index {
			continue
		}

		for _, day := range entries[i].Weekday {
			if day == week {
				return i
			}
		}
	}

	return -1
}

func (e *Engine) command(ownerUUID, deviceType, tempHeat string) models.TimerCommand {
	return models.TimerCommand{
		UUID:       ownerUUID,
		DeviceType: deviceType,
		Cmd: models.Command{
			Name: models.CmdSetTemperature,
			Code: models.CmdCodeSetTemperature,
			Parameters: models.SetTemperatureParams{
				HeatMode: timerHeatMode,
				TempHeat: tempHeat,
			},
		},
	}
}
