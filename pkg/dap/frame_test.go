// Copyright 2026 The Varphi Authors.
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

package dap

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestFrameWriterReader(t *testing.T) {
	var buf bytes.Buffer
	w := NewFrameWriter(&buf)
	if err := w.WriteMessage(map[string]string{"hello": "world"}); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if err := w.WriteMessage(map[string]int{"n": 2}); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	r := NewFrameReader(&buf)
	first, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(first, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got["hello"] != "world" {
		t.Errorf("first message = %v, want hello=world", got)
	}

	second, err := r.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage (second): %v", err)
	}
	var gotN map[string]int
	if err := json.Unmarshal(second, &gotN); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if gotN["n"] != 2 {
		t.Errorf("second message = %v, want n=2", gotN)
	}
}

func TestFrameReaderMissingContentLength(t *testing.T) {
	r := NewFrameReader(strings.NewReader("X-Other: 1\r\n\r\n{}"))
	if _, err := r.ReadMessage(); err == nil {
		t.Error("ReadMessage with no Content-Length: want error, got nil")
	}
}
