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

import "encoding/json"

// Request is an incoming message from a debug adapter client.
type Request struct {
	Seq       int             `json:"seq"`
	Type      string          `json:"type"`
	Command   string          `json:"command"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Response is a reply to a single Request, correlated by RequestSeq.
type Response struct {
	Seq        int         `json:"seq"`
	Type       string      `json:"type"`
	RequestSeq int         `json:"request_seq"`
	Success    bool        `json:"success"`
	Command    string      `json:"command"`
	Message    string      `json:"message,omitempty"`
	Body       interface{} `json:"body,omitempty"`
}

// Event is an unsolicited message from the adapter to the client.
type Event struct {
	Seq   int         `json:"seq"`
	Type  string      `json:"type"`
	Event string      `json:"event"`
	Body  interface{} `json:"body,omitempty"`
}

func newResponse(req Request, success bool, body interface{}) Response {
	return Response{
		Type:       "response",
		RequestSeq: req.Seq,
		Success:    success,
		Command:    req.Command,
		Body:       body,
	}
}

func newEvent(event string, body interface{}) Event {
	return Event{Type: "event", Event: event, Body: body}
}

// launchArguments is the body of a "launch" request's Arguments.
type launchArguments struct {
	NoDebug    *bool  `json:"noDebug"`
	SourcePath string `json:"sourcePath"`
	Tape       string `json:"tape"`
	hasTape    bool
}

func (a *launchArguments) UnmarshalJSON(data []byte) error {
	var raw struct {
		NoDebug    *bool   `json:"noDebug"`
		SourcePath *string `json:"sourcePath"`
		Tape       *string `json:"tape"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.NoDebug = raw.NoDebug
	if raw.SourcePath != nil {
		a.SourcePath = *raw.SourcePath
	}
	if raw.Tape != nil {
		a.Tape = *raw.Tape
		a.hasTape = true
	}
	return nil
}

// breakpointsArguments is the body of a "setBreakpoints" request's Arguments.
type breakpointsArguments struct {
	SourceModified bool `json:"sourceModified"`
	Breakpoints    []struct {
		Line int `json:"line"`
	} `json:"breakpoints"`
}
