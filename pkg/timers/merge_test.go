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

package timers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwarm/thermolink/pkg/models"
)

const (
	testOwner   = "owner-uuid"
	testDevType = "050608070001"
)

func pinnedEngine() *Engine {
	var n int

	return &Engine{NewID: func() string {
		n++
		return fmt.Sprintf("timer-%d", n)
	}}
}

func TestConvertNilYieldsNil(t *testing.T) {
	engine := pinnedEngine()

	assert.Nil(t, engine.Convert(nil, testOwner, testDevType))
}

func TestConvertBuildsEntries(t *testing.T) {
	engine := pinnedEngine()

	incoming := []models.TimerGroup{
		{Week: 1, SubTimer: []models.SubTimer{
			{Index: 0, Time: "06:30", TempHeat: "21"},
			{Index: 1, Time: "08:00", TempHeat: "17"},
		}},
		{Week: 2, SubTimer: []models.SubTimer{
			{Index: 0, Time: "07:00", TempHeat: "20"},
		}},
	}

	entries := engine.Convert(incoming, testOwner, testDevType)
	require.Len(t, entries, 3)

	first := entries[0]
	assert.Equal(t, "timer-1", first.TimerID)
	assert.Equal(t, models.TimerName, first.Name)
	assert.Equal(t, models.TimerModeSeries, first.Mode)
	assert.Equal(t, 0, first.Interval)
	assert.Equal(t, []string{"06:30"}, first.Between)
	assert.Equal(t, []int{1}, first.Weekday)

	require.Len(t, first.Commands, 1)
	cmd := first.Commands[0]
	assert.Equal(t, testOwner, cmd.UUID)
	assert.Equal(t, testDevType, cmd.DeviceType)
	assert.Equal(t, models.CmdSetTemperature, cmd.Cmd.Name)
	assert.Equal(t, models.CmdCodeSetTemperature, cmd.Cmd.Code)

	params, ok := cmd.Cmd.Parameters.(models.SetTemperatureParams)
	require.True(t, ok)
	assert.Equal(t, 2, params.HeatMode)
	assert.Equal(t, "21", params.TempHeat)

	assert.Equal(t, []int{2}, entries[2].Weekday)
	assert.Equal(t, 0, entries[2].Index)
}

func TestMergeUpdatesMatchingEntryInPlace(t *testing.T) {
	engine := pinnedEngine()

	existing := []models.TimerEntry{{
		TimerID:  "keep-me",
		Index:    0,
		Name:     models.TimerName,
		Mode:     models.TimerModeSeries,
		Between:  []string{"06:30"},
		Weekday:  []int{1},
		Commands: []models.TimerCommand{{UUID: testOwner}},
	}}

	incoming := []models.TimerGroup{
		{Week: 1, SubTimer: []models.SubTimer{{Index: 0, Time: "09:15", TempHeat: "23"}}},
	}

	merged := engine.Merge(existing, incoming, testOwner, testDevType)
	require.Len(t, merged, 1)
	assert.Equal(t, "keep-me", merged[0].TimerID)
	assert.Equal(t, []string{"09:15"}, merged[0].Between)

	require.Len(t, merged[0].Commands, 1)
	params, ok := merged[0].Commands[0].Cmd.Parameters.(models.SetTemperatureParams)
	require.True(t, ok)
	assert.Equal(t, "23", params.TempHeat)
}

func TestMergeAppendsNewWeekdayIndexPair(t *testing.T) {
	engine := pinnedEngine()

	existing := []models.TimerEntry{{
		TimerID: "keep-me",
		Index:   0,
		Weekday: []int{1},
		Between: []string{"06:30"},
	}}

	incoming := []models.TimerGroup{
		// Same weekday, new index.
		{Week: 1, SubTimer: []models.SubTimer{{Index: 1, Time: "20:00", TempHeat: "18"}}},
		// Same index, new weekday.
		{Week: 3, SubTimer: []models.SubTimer{{Index: 0, Time: "07:45", TempHeat: "20"}}},
	}

	merged := engine.Merge(existing, incoming, testOwner, testDevType)
	require.Len(t, merged, 3)
	assert.Equal(t, "keep-me", merged[0].TimerID)
	assert.Equal(t, "timer-1", merged[1].TimerID)
	assert.Equal(t, []int{1}, merged[1].Weekday)
	assert.Equal(t, 1, merged[1].Index)
	assert.Equal(t, "timer-2", merged[2].TimerID)
	assert.Equal(t, []int{3}, merged[2].Weekday)
}

func TestMergeIsIdempotent(t *testing.T) {
	engine := pinnedEngine()

	incoming := []models.TimerGroup{
		{Week: 5, SubTimer: []models.SubTimer{{Index: 2, Time: "12:00", TempHeat: "19"}}},
	}

	once := engine.Merge(nil, incoming, testOwner, testDevType)
	require.Len(t, once, 1)

	twice := engine.Merge(once, incoming, testOwner, testDevType)
	require.Len(t, twice, 1)
	assert.Equal(t, once[0].TimerID, twice[0].TimerID)
	assert.Equal(t, once[0].Between, twice[0].Between)
}
