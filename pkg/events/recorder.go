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

package events

import "sync"

// Recorded is one event captured by a Recorder.
type Recorded struct {
	Tag  string
	Data interface{}
}

// Recorder is an Emitter that captures events synchronously so tests can
// assert on emissions independently of the response path.
type Recorder struct {
	mu     sync.Mutex
	events []Recorded
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit implements Emitter.
func (r *Recorder) Emit(tag string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Recorded{Tag: tag, Data: data})
}

// Events returns a copy of everything emitted so far.
func (r *Recorder) Events() []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Recorded, len(r.events))
	copy(out, r.events)

	return out
}

var _ Emitter = (*Recorder)(nil)
