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

package expansion

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameConstructors(t *testing.T) {
	t.Parallel()

	t.Run("Heartbeat", func(t *testing.T) {
		t.Parallel()
		f := HeartbeatFrame()
		assert.Equal(t, FrameTypeHeartbeat, f.Type)
	})

	t.Run("Status", func(t *testing.T) {
		t.Parallel()
		f := StatusFrame(StatusErrorBaudRate)
		assert.Equal(t, FrameTypeStatus, f.Type)
		assert.Equal(t, StatusErrorBaudRate, f.Error)
	})

	t.Run("BaudRate", func(t *testing.T) {
		t.Parallel()
		f := BaudRateFrame(230400)
		assert.Equal(t, FrameTypeBaudRate, f.Type)
		assert.Equal(t, uint32(230400), f.Baud)
	})

	t.Run("Control", func(t *testing.T) {
		t.Parallel()
		f := ControlFrame(ControlCommandStopRPC)
		assert.Equal(t, FrameTypeControl, f.Type)
		assert.Equal(t, ControlCommandStopRPC, f.Command)
	})

	t.Run("Data", func(t *testing.T) {
		t.Parallel()
		payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
		f, err := DataFrame(payload)
		require.NoError(t, err)
		assert.Equal(t, FrameTypeData, f.Type)
		assert.Equal(t, uint8(4), f.Size)
		assert.Equal(t, payload, f.Payload())
	})
}

func TestDataFrameTooLarge(t *testing.T) {
	t.Parallel()

	_, err := DataFrame(make([]byte, MaxDataSize+1))
	require.ErrorIs(t, err, ErrDataTooLarge)
}

func TestDataFrameCopiesPayload(t *testing.T) {
	t.Parallel()

	payload := []byte{1, 2, 3}
	f, err := DataFrame(payload)
	require.NoError(t, err)

	payload[0] = 0xFF
	assert.Equal(t, []byte{1, 2, 3}, f.Payload())
}

func TestUnrecognizedStatusCodePreserved(t *testing.T) {
	t.Parallel()

	// Codes outside the known set must pass through untouched.
	wire := []byte{byte(FrameTypeStatus), 0x7E}

	var f Frame
	require.NoError(t, DecodeFrom(&f, bytes.NewReader(wire)))
	assert.Equal(t, StatusError(0x7E), f.Error)

	var out bytes.Buffer
	require.NoError(t, EncodeTo(&f, &out))
	assert.Equal(t, wire, out.Bytes())
}

func TestFrameTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want string
		typ  FrameType
	}{
		{typ: FrameTypeHeartbeat, want: "heartbeat"},
		{typ: FrameTypeStatus, want: "status"},
		{typ: FrameTypeBaudRate, want: "baudrate"},
		{typ: FrameTypeControl, want: "control"},
		{typ: FrameTypeData, want: "data"},
		{typ: FrameType(0xAB), want: "unknown(0xAB)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}
