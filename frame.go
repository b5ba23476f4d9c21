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
	"encoding/binary"
	"fmt"
)

// FrameType identifies the wire layout of a frame's content region.
type FrameType byte

// Frame type tags as they appear on the wire.
const (
	FrameTypeHeartbeat FrameType = 0x01 // Liveness signal, no content
	FrameTypeStatus    FrameType = 0x02 // Error code report / acknowledgement
	FrameTypeBaudRate  FrameType = 0x03 // Baud rate negotiation request
	FrameTypeControl   FrameType = 0x04 // Session control command
	FrameTypeData      FrameType = 0x05 // Opaque payload
)

// String returns a human-readable name for the frame type.
func (t FrameType) String() string {
	switch t {
	case FrameTypeHeartbeat:
		return "heartbeat"
	case FrameTypeStatus:
		return "status"
	case FrameTypeBaudRate:
		return "baudrate"
	case FrameTypeControl:
		return "control"
	case FrameTypeData:
		return "data"
	default:
		return fmt.Sprintf("unknown(0x%02X)", byte(t))
	}
}

// StatusError is the error code carried by a Status frame. Codes outside
// the enumeration below are carried through unmodified so that newer hosts
// can report conditions this library does not know about.
type StatusError byte

// Known status error codes.
const (
	StatusErrorNone     StatusError = 0x00 // No error occurred
	StatusErrorUnknown  StatusError = 0x01 // Generic failure response
	StatusErrorBaudRate StatusError = 0x02 // Requested baud rate not supported
)

// ControlCommand is the command number carried by a Control frame.
type ControlCommand byte

// Known control commands.
const (
	ControlCommandStartRPC ControlCommand = 0x00 // Start an RPC session
	ControlCommandStopRPC  ControlCommand = 0x01 // Stop an open RPC session
)

// Frame size limits and field widths.
const (
	// MaxDataSize is the maximum Data frame payload, in bytes.
	MaxDataSize = 64

	headerSize   = 1 // Type tag
	statusSize   = 1 // Status frame content
	baudSize     = 4 // BaudRate frame content (little-endian uint32)
	commandSize  = 1 // Control frame content
	dataSizeSize = 1 // Data frame length field

	// MaxFrameSize is the largest possible encoded frame: the type tag,
	// the Data length field and a full payload. Sizing receive buffers to
	// this constant makes a declared-length overrun impossible.
	MaxFrameSize = headerSize + dataSizeSize + MaxDataSize
)

// Frame is one protocol message. The variant fields are flattened into a
// single struct so that a Frame is a fixed-size, stack-allocatable value;
// only the fields selected by Type are meaningful. The codec never
// allocates frame storage, the caller owns the value for the duration of
// a decode or encode call.
type Frame struct {
	// Type selects the variant and therefore the wire layout.
	Type FrameType

	// Error is the reported error code. Status frames only.
	Error StatusError

	// Baud is the requested baud rate. BaudRate frames only.
	Baud uint32

	// Command is the control command number. Control frames only.
	Command ControlCommand

	// Size is the number of valid payload bytes, never above MaxDataSize.
	// Data frames only.
	Size uint8

	// Data holds the payload. Bytes past Size are not meaningful.
	Data [MaxDataSize]byte
}

// HeartbeatFrame returns a liveness signal frame.
func HeartbeatFrame() Frame {
	return Frame{Type: FrameTypeHeartbeat}
}

// StatusFrame returns a Status frame reporting code.
func StatusFrame(code StatusError) Frame {
	return Frame{Type: FrameTypeStatus, Error: code}
}

// BaudRateFrame returns a BaudRate frame requesting the given rate.
func BaudRateFrame(baud uint32) Frame {
	return Frame{Type: FrameTypeBaudRate, Baud: baud}
}

// ControlFrame returns a Control frame carrying cmd.
func ControlFrame(cmd ControlCommand) Frame {
	return Frame{Type: FrameTypeControl, Command: cmd}
}

// DataFrame returns a Data frame carrying a copy of payload. The payload
// must not exceed MaxDataSize bytes.
func DataFrame(payload []byte) (Frame, error) {
	if len(payload) > MaxDataSize {
		return Frame{}, fmt.Errorf("%w: %d bytes, maximum %d", ErrDataTooLarge, len(payload), MaxDataSize)
	}
	f := Frame{Type: FrameTypeData, Size: uint8(len(payload))}
	copy(f.Data[:], payload)
	return f, nil
}

// Payload returns the valid portion of a Data frame's payload. The slice
// aliases the frame's buffer and is only valid while the frame is.
func (f *Frame) Payload() []byte {
	return f.Data[:f.Size]
}

// marshal writes f's wire form into buf, which must hold at least
// MaxFrameSize bytes, and returns the encoded length. The frame type must
// already be validated via EncodedSize; an unknown type writes nothing.
func (f *Frame) marshal(buf []byte) int {
	buf[0] = byte(f.Type)
	switch f.Type {
	case FrameTypeHeartbeat:
		return headerSize
	case FrameTypeStatus:
		buf[headerSize] = byte(f.Error)
		return headerSize + statusSize
	case FrameTypeBaudRate:
		binary.LittleEndian.PutUint32(buf[headerSize:], f.Baud)
		return headerSize + baudSize
	case FrameTypeControl:
		buf[headerSize] = byte(f.Command)
		return headerSize + commandSize
	case FrameTypeData:
		buf[headerSize] = f.Size
		copy(buf[headerSize+dataSizeSize:], f.Data[:f.Size])
		return headerSize + dataSizeSize + int(f.Size)
	default:
		return 0
	}
}

// unmarshal populates f from a complete wire form in buf. Fields not
// selected by the type tag are zeroed.
func (f *Frame) unmarshal(buf []byte) {
	*f = Frame{Type: FrameType(buf[0])}
	switch f.Type {
	case FrameTypeStatus:
		f.Error = StatusError(buf[headerSize])
	case FrameTypeBaudRate:
		f.Baud = binary.LittleEndian.Uint32(buf[headerSize:])
	case FrameTypeControl:
		f.Command = ControlCommand(buf[headerSize])
	case FrameTypeData:
		f.Size = buf[headerSize]
		copy(f.Data[:], buf[headerSize+dataSizeSize:headerSize+dataSizeSize+int(f.Size)])
	}
}
