// Copyright (c) 2026, The tap-channeldock Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package singer

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Writer emits Singer messages as JSON lines. It is safe for concurrent use;
// each message is written with a single Write call.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	counts map[MessageType]int
}

// NewWriter returns a Writer over out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out:    out,
		counts: make(map[MessageType]int),
	}
}

// WriteSchema emits a SCHEMA message.
func (w *Writer) WriteSchema(stream string, schema *Schema, keyProperties, bookmarkProperties []string) error {
	if keyProperties == nil {
		keyProperties = []string{}
	}
	return w.write(MessageTypeSchema, SchemaMessage{
		Type:               MessageTypeSchema,
		Stream:             stream,
		Schema:             schema,
		KeyProperties:      keyProperties,
		BookmarkProperties: bookmarkProperties,
	})
}

// WriteRecord emits a RECORD message.
func (w *Writer) WriteRecord(stream string, record map[string]any, extracted time.Time) error {
	return w.write(MessageTypeRecord, RecordMessage{
		Type:          MessageTypeRecord,
		Stream:        stream,
		Record:        record,
		TimeExtracted: formatTimeExtracted(extracted),
	})
}

// WriteState emits a STATE message with value as the full state.
func (w *Writer) WriteState(value any) error {
	return w.write(MessageTypeState, StateMessage{
		Type:  MessageTypeState,
		Value: value,
	})
}

func (w *Writer) write(kind MessageType, msg any) error {
	line, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode %s message: %w", kind, err)
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.out.Write(line); err != nil {
		return fmt.Errorf("failed to write %s message: %w", kind, err)
	}
	w.counts[kind]++
	return nil
}

// Count returns the number of messages of kind written so far.
func (w *Writer) Count(kind MessageType) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.counts[kind]
}
