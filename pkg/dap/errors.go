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

import "fmt"

// ProtocolError reports a client message that violates the session's
// expectations of it: a required "launch" argument missing, or a
// "setBreakpoints" request flagging sourceModified. It is always fatal to
// the session: Serve reports it to the client as the standard
// exited/output/terminated triple and returns it to the caller.
type ProtocolError struct {
	Command string
	Message string
}

func (e ProtocolError) Error() string {
	return fmt.Sprintf("dap: %s: %s", e.Command, e.Message)
}

func missingArgument(command, name string) error {
	return ProtocolError{Command: command, Message: fmt.Sprintf("missing argument %q", name)}
}
