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
	"errors"
	"fmt"
	"io"

	"github.com/varphi-lang/varphi/pkg/varphi"
)

// Session is one debug adapter client's view of a single Varphi program.
// It owns a *varphi.Machine once "launch" has supplied a tape, and
// dispatches the fixed set of DAP commands a line-stepping single-threaded
// debugger needs. A Session is not safe for concurrent use; it is driven
// entirely by a single call to Serve from one goroutine,
// matching the client's own strictly sequential request stream.
type Session struct {
	program *varphi.Program
	in      *FrameReader
	out     *FrameWriter

	machine     *varphi.Machine
	tape        *varphi.Tape
	noDebug     bool
	sourcePath  string
	breakpoints map[int]bool
	currentLine int
	nextSeq     int
}

// NewSession returns a Session over program, reading requests from in and
// writing responses/events to out.
func NewSession(program *varphi.Program, in *FrameReader, out *FrameWriter) *Session {
	return &Session{
		program:     program,
		in:          in,
		out:         out,
		breakpoints: make(map[int]bool),
		currentLine: -1,
	}
}

// Serve reads and dispatches requests until "disconnect" is handled or the
// frame stream ends (io.EOF, returned as nil since that is a client
// disconnecting without the documented handshake). Any other error
// encountered while handling a request is reported to the client as the
// "exited"/"output"/"terminated" event triple before being returned to the
// caller.
func (s *Session) Serve() error {
	for {
		raw, err := s.in.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		done, err := s.handleMessage(raw)
		if err != nil {
			s.reportFatal(err)
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Session) reportFatal(err error) {
	s.emit("exited", map[string]interface{}{"exitCode": 0})
	s.emit("output", map[string]interface{}{
		"category": "stderr",
		"output":   err.Error(),
	})
	s.emit("terminated", nil)
}

func (s *Session) handleMessage(raw json.RawMessage) (done bool, err error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return false, fmt.Errorf("dap: malformed message: %w", err)
	}
	if envelope.Type != "request" {
		return false, nil
	}
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return false, fmt.Errorf("dap: malformed request: %w", err)
	}
	return s.handleRequest(req)
}

// seq returns the next value in the outgoing message sequence, shared by
// responses and events on this session's single writer.
func (s *Session) seq() int {
	s.nextSeq++
	return s.nextSeq
}

func (s *Session) respond(req Request, success bool, body interface{}) {
	resp := newResponse(req, success, body)
	resp.Seq = s.seq()
	s.out.WriteMessage(resp)
}

func (s *Session) emit(event string, body interface{}) {
	evt := newEvent(event, body)
	evt.Seq = s.seq()
	s.out.WriteMessage(evt)
}

func (s *Session) handleRequest(req Request) (done bool, err error) {
	switch req.Command {
	case "initialize":
		s.handleInitialize(req)
	case "launch":
		err = s.handleLaunch(req)
	case "setBreakpoints":
		err = s.handleSetBreakpoints(req)
	case "configurationDone":
		s.handleConfigurationDone(req)
	case "threads":
		s.handleThreads(req)
	case "stackTrace":
		s.handleStackTrace(req)
	case "scopes":
		s.handleScopes(req)
	case "variables":
		s.handleVariables(req)
	case "next", "stepIn", "stepOut":
		s.handleStep(req)
	case "continue":
		s.handleContinue(req)
	case "disconnect":
		s.handleDisconnect(req)
		done = true
	}
	return done, err
}

func (s *Session) handleInitialize(req Request) {
	s.respond(req, true, map[string]interface{}{
		"supportsConfigurationDoneRequest":      true,
		"supportsSingleThreadExecutionRequests": true,
	})
	s.emit("initialized", nil)
}

func (s *Session) handleLaunch(req Request) error {
	var args launchArguments
	if err := json.Unmarshal(req.Arguments, &args); err != nil {
		return fmt.Errorf("dap: launch: malformed arguments: %w", err)
	}
	if args.NoDebug == nil {
		return missingArgument("launch", "noDebug")
	}
	if args.SourcePath == "" {
		return missingArgument("launch", "sourcePath")
	}
	if !args.hasTape {
		return missingArgument("launch", "tape")
	}

	tape, err := TapeFromString(args.Tape)
	if err != nil {
		return err
	}
	machine, err := varphi.NewMachine(s.program, tape, varphi.NewRandChooser())
	if err != nil {
		return err
	}

	s.noDebug = *args.NoDebug
	s.sourcePath = args.SourcePath
	s.tape = tape
	s.machine = machine

	s.respond(req, true, nil)
	return nil
}

func (s *Session) handleSetBreakpoints(req Request) error {
	var args breakpointsArguments
	if len(req.Arguments) > 0 {
		if err := json.Unmarshal(req.Arguments, &args); err != nil {
			return fmt.Errorf("dap: setBreakpoints: malformed arguments: %w", err)
		}
	}

	verified := make([]map[string]interface{}, 0, len(args.Breakpoints))
	for _, bp := range args.Breakpoints {
		s.breakpoints[bp.Line] = true
		verified = append(verified, map[string]interface{}{"verified": true})
	}

	if args.SourceModified {
		return ProtocolError{
			Command: "setBreakpoints",
			Message: "source code change detected, restart the debugging process",
		}
	}

	s.respond(req, true, map[string]interface{}{"breakpoints": verified})
	if s.noDebug {
		s.breakpoints = make(map[int]bool)
	}
	return nil
}

func (s *Session) handleConfigurationDone(req Request) {
	s.respond(req, true, nil)

	if s.noDebug {
		s.runToCompletion()
		return
	}

	if len(s.breakpoints) == 0 {
		s.armAndReportStep("step")
		return
	}

	for {
		inst, err := s.machine.ArmNext()
		if errors.Is(err, varphi.ErrHalted) {
			s.reportHalt()
			return
		}
		if s.breakpoints[inst.Line] {
			s.currentLine = inst.Line
			s.emit("stopped", stoppedBody("breakpoint"))
			return
		}
		s.currentLine = inst.Line
		s.machine.Commit()
	}
}

// armAndReportStep arms the next instruction (without executing it),
// records its line as the one the client should highlight, and reports a
// "stopped" event with the given reason. It reports a halt instead if no
// instruction matches.
func (s *Session) armAndReportStep(reason string) {
	inst, err := s.machine.ArmNext()
	if errors.Is(err, varphi.ErrHalted) {
		s.reportHalt()
		return
	}
	s.currentLine = inst.Line
	s.emit("stopped", stoppedBody(reason))
}

func (s *Session) runToCompletion() {
	for {
		if _, err := s.machine.Step(); err != nil {
			if errors.Is(err, varphi.ErrHalted) {
				s.reportHalt()
				return
			}
			return
		}
	}
}

func (s *Session) reportHalt() {
	s.emit("exited", map[string]interface{}{"exitCode": 0})
	s.emit("output", map[string]interface{}{
		"category": "console",
		"output":   s.tape.Render(),
	})
	s.emit("terminated", nil)
}

func stoppedBody(reason string) map[string]interface{} {
	return map[string]interface{}{
		"reason":            reason,
		"threadId":          1,
		"allThreadsStopped": true,
	}
}

func (s *Session) handleThreads(req Request) {
	s.respond(req, true, map[string]interface{}{
		"threads": []map[string]interface{}{{"id": 1, "name": "thread1"}},
	})
}

func (s *Session) handleStackTrace(req Request) {
	s.respond(req, true, map[string]interface{}{
		"stackFrames": []map[string]interface{}{{
			"id":   0,
			"name": "source",
			"source": map[string]interface{}{
				"name": "Varphi Program",
				"path": s.sourcePath,
			},
			"line":   s.currentLine,
			"column": 0,
		}},
		"totalFrames": 1,
	})
}

func (s *Session) handleScopes(req Request) {
	s.respond(req, true, map[string]interface{}{
		"scopes": []map[string]interface{}{{
			"name":               "Machine Variables",
			"variablesReference": 1,
		}},
	})
}

func (s *Session) handleVariables(req Request) {
	name, _ := s.program.StateName(s.machine.State)
	lo, _ := s.tape.Bounds()

	vars := []map[string]interface{}{
		{"name": "Tape", "value": varphi.DebugView(s.tape, s.machine.Head), "variablesReference": 0},
		{"name": "State", "value": name, "variablesReference": 0},
		{"name": "Head", "value": fmt.Sprintf("%d", s.machine.Head.Index()), "variablesReference": 0},
		{"name": "Tape Zero", "value": fmt.Sprintf("%d", -lo), "variablesReference": 0},
	}
	s.respond(req, true, map[string]interface{}{"variables": vars})
}

// handleStep implements "next", "stepIn", and "stepOut" identically: a
// Varphi program has no call structure for step-in/out to distinguish, so
// all three commands just commit the armed instruction and arm the next
// one, matching the reference debugger's single execute/determine pair.
func (s *Session) handleStep(req Request) {
	if err := s.machine.Commit(); err != nil {
		// Nothing was armed (configurationDone already halted); treat as
		// an immediate halt report rather than propagating a caller bug.
		s.reportHalt()
		return
	}
	inst, err := s.machine.ArmNext()
	if errors.Is(err, varphi.ErrHalted) {
		s.reportHalt()
		return
	}
	s.currentLine = inst.Line
	s.respond(req, true, map[string]interface{}{"allThreadsContinued": true})
	s.emit("stopped", stoppedBody("step"))
}

func (s *Session) handleContinue(req Request) {
	for {
		if err := s.machine.Commit(); err != nil {
			s.reportHalt()
			return
		}
		inst, err := s.machine.ArmNext()
		if errors.Is(err, varphi.ErrHalted) {
			s.reportHalt()
			return
		}
		s.currentLine = inst.Line
		if s.breakpoints[inst.Line] {
			s.respond(req, true, map[string]interface{}{"allThreadsContinued": true})
			s.emit("stopped", stoppedBody("breakpoint"))
			return
		}
	}
}

// handleDisconnect replies with command "terminate" rather than
// "disconnect". This looks like a naming bug but a real client already
// depends on it, so it is kept rather than corrected.
func (s *Session) handleDisconnect(req Request) {
	s.out.WriteMessage(Response{
		Seq:        s.seq(),
		Type:       "response",
		RequestSeq: req.Seq,
		Success:    true,
		Command:    "terminate",
	})
}
