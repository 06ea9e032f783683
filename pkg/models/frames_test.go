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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteSeqDecodesByteArray(t *testing.T) {
	var b ByteSeq

	require.NoError(t, json.Unmarshal([]byte(`[104, 101, 108, 108, 111]`), &b))
	assert.Equal(t, "hello", string(b))
}

func TestByteSeqDecodesBase64String(t *testing.T) {
	var b ByteSeq

	require.NoError(t, json.Unmarshal([]byte(`"aGVsbG8="`), &b))
	assert.Equal(t, "hello", string(b))
}

func TestByteSeqRejectsOutOfRangeValues(t *testing.T) {
	var b ByteSeq

	require.Error(t, json.Unmarshal([]byte(`[104, 256]`), &b))
	require.Error(t, json.Unmarshal([]byte(`[-1]`), &b))
}

func TestFrameEnvelopeDecode(t *testing.T) {
	raw := `{"from": "sock-1", "data": {"data": [123, 125]}}`

	var env FrameEnvelope

	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.Equal(t, "sock-1", env.From)
	require.NotNil(t, env.Data)
	assert.Equal(t, "{}", string(env.Data.Data))
}

func TestFrameEnvelopeDecodeWithoutData(t *testing.T) {
	var env FrameEnvelope

	require.NoError(t, json.Unmarshal([]byte(`{"from": "sock-1"}`), &env))
	assert.Nil(t, env.Data)
}

func TestServiceResponseOK(t *testing.T) {
	assert.True(t, (&ServiceResponse{RetCode: CodeSuccess}).OK())
	assert.False(t, (&ServiceResponse{RetCode: CodeUnknownDevice}).OK())
}

func TestHeatModeLabel(t *testing.T) {
	assert.Equal(t, "AWAY", HeatModeLabel(1))
	assert.Equal(t, "AUTO", HeatModeLabel(2))
	assert.Equal(t, "MANUAL", HeatModeLabel(0))
	assert.Equal(t, "MANUAL", HeatModeLabel(9))
}
