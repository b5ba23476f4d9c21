// go-expansion
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-expansion.
//
// go-expansion is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-expansion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-expansion; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Package testutil provides scripted stream doubles for protocol tests.
package testutil

import "bytes"

// ScriptedStream implements the expansion Stream contract against canned
// bytes. Receive serves the scripted input in configurable chunk sizes to
// simulate short serial reads; Send records everything written and can
// under-report the consumed count to simulate a failing sink.
type ScriptedStream struct {
	ReceiveErr   error // returned by every Receive when set
	SendErr      error // returned by every Send when set
	input        []byte
	sent         bytes.Buffer
	pos          int
	ChunkSize    int // max bytes served per Receive; 0 means no limit
	ShortSendBy  int // Send under-reports the count by this many bytes
	ReceiveCalls int
	SendCalls    int
}

// NewScriptedStream returns a stream that will serve input to Receive.
func NewScriptedStream(input []byte) *ScriptedStream {
	return &ScriptedStream{input: append([]byte(nil), input...)}
}

// Feed appends more bytes to the scripted input.
func (s *ScriptedStream) Feed(b []byte) {
	s.input = append(s.input, b...)
}

// Receive copies scripted bytes into p, honoring ChunkSize. Exhausted
// input yields a 0 count, which the codec treats as a stalled stream.
func (s *ScriptedStream) Receive(p []byte) (int, error) {
	s.ReceiveCalls++
	if s.ReceiveErr != nil {
		return 0, s.ReceiveErr
	}
	if s.pos >= len(s.input) {
		return 0, nil
	}

	limit := len(p)
	if s.ChunkSize > 0 && limit > s.ChunkSize {
		limit = s.ChunkSize
	}
	n := copy(p[:limit], s.input[s.pos:])
	s.pos += n
	return n, nil
}

// Send records p and reports the consumed count, minus ShortSendBy.
func (s *ScriptedStream) Send(p []byte) (int, error) {
	s.SendCalls++
	if s.SendErr != nil {
		return 0, s.SendErr
	}
	s.sent.Write(p)

	n := len(p) - s.ShortSendBy
	if n < 0 {
		n = 0
	}
	return n, nil
}

// Sent returns everything written through Send so far.
func (s *ScriptedStream) Sent() []byte {
	return s.sent.Bytes()
}
