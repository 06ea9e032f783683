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

// Package pipeline drives an ordered sequence of stages with explicit
// short-circuit semantics. Each stage either continues with a transformed
// value, terminates the sequence with a terminal result, or fails.
package pipeline

import "context"

type resultKind int

const (
	kindContinue resultKind = iota
	kindTerminate
	kindFail
)

// Result is the tagged outcome of one stage.
type Result[V, T any] struct {
	kind     resultKind
	value    V
	terminal T
	err      error
}

// Stage transforms the flow value or ends the sequence.
type Stage[V, T any] func(ctx context.Context, v V) Result[V, T]

// Flow binds the flow and terminal types once so stage code can build
// results without repeating type arguments.
type Flow[V, T any] struct{}

// Continue passes v to the next stage.
func (Flow[V, T]) Continue(v V) Result[V, T] {
	return Result[V, T]{kind: kindContinue, value: v}
}

// Terminate skips all remaining stages and yields t as the sequence result.
func (Flow[V, T]) Terminate(t T) Result[V, T] {
	return Result[V, T]{kind: kindTerminate, terminal: t}
}

// Fail aborts the sequence with err.
func (Flow[V, T]) Fail(err error) Result[V, T] {
	return Result[V, T]{kind: kindFail, err: err}
}

// Run executes stages in order starting from seed. It returns the terminal
// result of the first stage that terminates, or the stage error of the
// first that fails. Falling off the end of the sequence yields the zero
// terminal value.
func (Flow[V, T]) Run(ctx context.Context, seed V, stages ...Stage[V, T]) (T, error) {
	value := seed

	var zero T

	for _, stage := range stages {
		res := stage(ctx, value)

		switch res.kind {
		case kindContinue:
			value = res.value
		case kindTerminate:
			return res.terminal, nil
		case kindFail:
			return zero, res.err
		}
	}

	return zero, nil
}
