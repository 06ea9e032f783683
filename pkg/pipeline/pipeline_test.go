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

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunThreadsValueThroughStages(t *testing.T) {
	var flow Flow[int, string]

	out, err := flow.Run(context.Background(), 1,
		func(_ context.Context, v int) Result[int, string] {
			return flow.Continue(v + 1)
		},
		func(_ context.Context, v int) Result[int, string] {
			require.Equal(t, 2, v)
			return flow.Terminate("done")
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestRunTerminateSkipsRemainingStages(t *testing.T) {
	var flow Flow[int, string]

	reached := false

	out, err := flow.Run(context.Background(), 0,
		func(_ context.Context, _ int) Result[int, string] {
			return flow.Terminate("early")
		},
		func(_ context.Context, _ int) Result[int, string] {
			reached = true
			return flow.Terminate("late")
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "early", out)
	assert.False(t, reached)
}

func TestRunFailAbortsWithError(t *testing.T) {
	var flow Flow[int, string]

	errBoom := errors.New("boom")

	out, err := flow.Run(context.Background(), 0,
		func(_ context.Context, _ int) Result[int, string] {
			return flow.Fail(errBoom)
		},
		func(_ context.Context, _ int) Result[int, string] {
			t.Fatal("stage after failure must not run")
			return flow.Terminate("")
		},
	)
	require.ErrorIs(t, err, errBoom)
	assert.Empty(t, out)
}

func TestRunExhaustedYieldsZeroTerminal(t *testing.T) {
	var flow Flow[int, *string]

	out, err := flow.Run(context.Background(), 0,
		func(_ context.Context, v int) Result[int, *string] {
			return flow.Continue(v)
		},
	)
	require.NoError(t, err)
	assert.Nil(t, out)
}
