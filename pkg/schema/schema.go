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

// Package schema validates inbound frames against the per-message-kind
// contracts of the HL device class. The validators are structural: required
// field lists, value types, the mac pattern, and extra-field rejection are
// enforced exactly as the device protocol defines them.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/cloudwarm/thermolink/pkg/models"
)

// macPattern is the stable hardware identity format: 12 uppercase hex digits.
var macPattern = regexp.MustCompile(`^[A-F0-9]{12}$`)

// ValidationError reports why a payload failed a message-kind contract.
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}

	return fmt.Sprintf("%s: field %q %s", e.Kind, e.Field, e.Reason)
}

func invalid(kind, field, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

// ValidateEnvelope checks the operation envelope delivered by the transport
// layer. Report and heartbeat operations require a data block; disconnect
// and liveness probes carry only the connection handle.
func ValidateEnvelope(env *models.FrameEnvelope, requireData bool) error {
	if env == nil {
		return invalid("envelope", "", "missing message")
	}

	if env.From == "" {
		return invalid("envelope", "from", "is required")
	}

	if requireData && env.Data == nil {
		return invalid("envelope", "data", "is required")
	}

	return nil
}

// DecodeErrorReport validates raw against the error_report contract:
// mac, errorTime, errorID and errorMSG are all required strings, the mac
// pattern is enforced, and no extra fields are permitted.
func DecodeErrorReport(raw []byte) (*models.ErrorReport, error) {
	const kind = "error_report"

	present, err := objectFields(raw)
	if err != nil {
		return nil, invalid(kind, "", "payload is not an object")
	}

	for _, field := range []string{"mac", "errorTime", "errorID", "errorMSG"} {
		if _, ok := present[field]; !ok {
			return nil, invalid(kind, field, "is required")
		}
	}

	var report models.ErrorReport
	if err := strictUnmarshal(raw, &report); err != nil {
		return nil, invalid(kind, "", err.Error())
	}

	if !macPattern.MatchString(report.MAC) {
		return nil, invalid(kind, "mac", "does not match ^[A-F0-9]{12}$")
	}

	return &report, nil
}

// deviceReportRequired is the mandatory field set of a full device report.
var deviceReportRequired = []string{
	"mac",
	"dev_type",
	"dis_dev_name",
	"dis_temp",
	"status_onoff",
	"temp_heat",
	"temp_out",
	"temp_comfort",
	"temp_energy",
	"heat_mode",
	"status",
	"encrypt",
}

// DecodeDeviceReport validates raw against the device_report contract: the
// full telemetry field set is required, the default bounds and timer list
// are optional, and no extra fields are permitted.
func DecodeDeviceReport(raw []byte) (*models.DeviceReport, error) {
	const kind = "device_report"

	present, err := objectFields(raw)
	if err != nil {
		return nil, invalid(kind, "", "payload is not an object")
	}

	for _, field := range deviceReportRequired {
		if _, ok := present[field]; !ok {
			return nil, invalid(kind, field, "is required")
		}
	}

	var report models.DeviceReport
	if err := strictUnmarshal(raw, &report); err != nil {
		return nil, invalid(kind, "", err.Error())
	}

	if !macPattern.MatchString(report.MAC) {
		return nil, invalid(kind, "mac", "does not match ^[A-F0-9]{12}$")
	}

	return &report, nil
}

// DecodeStateReport validates raw against the state_report contract: only
// mac is required; any other recognized field, when present, must carry the
// right type. Unrecognized fields are tolerated.
func DecodeStateReport(raw []byte) (*models.StateReport, error) {
	const kind = "state_report"

	present, err := objectFields(raw)
	if err != nil {
		return nil, invalid(kind, "", "payload is not an object")
	}

	if _, ok := present["mac"]; !ok {
		return nil, invalid(kind, "mac", "is required")
	}

	var report models.StateReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, invalid(kind, "", err.Error())
	}

	if !macPattern.MatchString(report.MAC) {
		return nil, invalid(kind, "mac", "does not match ^[A-F0-9]{12}$")
	}

	return &report, nil
}

// objectFields returns the top-level keys of a JSON object payload.
func objectFields(raw []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// strictUnmarshal decodes raw into dst rejecting unknown fields.
func strictUnmarshal(raw []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	return dec.Decode(dst)
}
