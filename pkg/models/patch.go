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

// DevicePatch is a structured sparse update of a DeviceRecord. Nil pointer
// fields are omitted from the update; the registry client translates the
// patch into the collaborator's sparse-path wire form, so nothing outside
// that boundary builds path strings.
type DevicePatch struct {
	UUID string

	Switch  *string
	Network *string

	MAC         *string
	DevType     *int
	DisDevName  *string
	StatusOnOff *int
	Encrypt     *string

	// Connection replaces extra.connection; ClearConnection writes an
	// explicit null instead (disconnect and liveness demotion).
	Connection      *Connection
	ClearConnection bool

	// Timers distinguishes three cases: nil omits the field, a pointer to a
	// nil slice writes an explicit null, a pointer to a non-empty slice
	// replaces the list.
	Timers *[]TimerEntry

	DisTemp     *string
	TempHeat    *string
	TempOut     *string
	TempComfort *string
	TempEnergy  *string
	HeatMode    *int
	Status      *int

	TempHeatDefaultMax *string
	TempHeatDefaultMin *string
}
