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

// Package dap implements a Debug Adapter Protocol front end for a Varphi
// program: a Content-Length-framed JSON request/response/event loop over
// any io.Reader/io.Writer pair, dispatching the small subset of DAP
// commands a single-threaded, single-machine debugger needs.
//
// A session is driven like this:
//
//	sess := dap.NewSession(program, frameReaderOverStdin, frameWriterOverStdout)
//	if err := sess.Serve(); err != nil {
//	    log.Fatal(err)
//	}
//
// Serve returns once the client sends "disconnect", or the underlying
// frame stream ends.
package dap
