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
	"encoding/json"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

// TestResponseMarshalShape pins the exact JSON a Response produces: render
// with json.MarshalIndent and diff the text with pretty.Compare rather than
// asserting field-by-field.
func TestResponseMarshalShape(t *testing.T) {
	resp := Response{
		Seq:        3,
		Type:       "response",
		RequestSeq: 2,
		Success:    true,
		Command:    "launch",
	}
	got, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	want := `{
  "seq": 3,
  "type": "response",
  "request_seq": 2,
  "success": true,
  "command": "launch"
}`
	if diff := pretty.Compare(string(got), want); diff != "" {
		t.Errorf("Response JSON shape mismatch, diff(-got,+want):\n%s", diff)
	}
}

// TestEventMarshalShape pins the JSON shape of a "stopped" event body.
func TestEventMarshalShape(t *testing.T) {
	evt := newEvent("stopped", stoppedBody("breakpoint"))
	evt.Seq = 7
	got, err := json.MarshalIndent(evt, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	want := `{
  "seq": 7,
  "type": "event",
  "event": "stopped",
  "body": {
    "allThreadsStopped": true,
    "reason": "breakpoint",
    "threadId": 1
  }
}`
	if diff := pretty.Compare(string(got), want); diff != "" {
		t.Errorf("Event JSON shape mismatch, diff(-got,+want):\n%s", diff)
	}
}
