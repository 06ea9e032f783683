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

import "github.com/cloudwarm/thermolink/pkg/models"

// UpdateParams translates a structured DevicePatch into the registry's
// sparse dot-path update form. Only fields set on the patch appear in the
// result.
func UpdateParams(patch *models.DevicePatch) map[string]interface{} {
	params := map[string]interface{}{
		"uuid": patch.UUID,
	}

	if patch.Switch != nil {
		params["status.switch"] = *patch.Switch
	}

	if patch.Network != nil {
		params["status.network"] = *patch.Network
	}

	if patch.MAC != nil {
		params["extra.mac"] = *patch.MAC
	}

	if patch.DevType != nil {
		params["extra.dev_type"] = *patch.DevType
	}

	if patch.DisDevName != nil {
		params["extra.dis_dev_name"] = *patch.DisDevName
	}

	if patch.StatusOnOff != nil {
		params["extra.status_onoff"] = *patch.StatusOnOff
	}

	if patch.Encrypt != nil {
		params["extra.encrypt"] = *patch.Encrypt
	}

	if patch.Connection != nil {
		params["extra.connection"] = patch.Connection
	} else if patch.ClearConnection {
		params["extra.connection"] = nil
	}

	if patch.Timers != nil {
		params["extra.timers"] = *patch.Timers
	}

	if patch.DisTemp != nil {
		params["extra.items.dis_temp"] = *patch.DisTemp
	}

	if patch.TempHeat != nil {
		params["extra.items.temp_heat"] = *patch.TempHeat
	}

	if patch.TempOut != nil {
		params["extra.items.temp_out"] = *patch.TempOut
	}

	if patch.TempComfort != nil {
		params["extra.items.temp_comfort"] = *patch.TempComfort
	}

	if patch.TempEnergy != nil {
		params["extra.items.temp_energy"] = *patch.TempEnergy
	}

	if patch.HeatMode != nil {
		params["extra.items.heat_mode"] = *patch.HeatMode
	}

	if patch.Status != nil {
		params["extra.items.status"] = *patch.Status
	}

	if patch.TempHeatDefaultMax != nil {
		params["extra.temp_heat_default_max"] = *patch.TempHeatDefaultMax
	}

	if patch.TempHeatDefaultMin != nil {
		params["extra.temp_heat_default_min"] = *patch.TempHeatDefaultMin
	}

	return params
}
