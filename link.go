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

import "fmt"

// Stream is a byte-oriented duplex link to the peer, typically a UART.
// Receive fills p with up to len(p) bytes and returns the count; a 0, nil
// return means no data arrived within the transport's deadline. Send
// writes p and returns the count consumed. Cancellation and timeouts are
// the transport's responsibility: a stream wanting either simply returns
// 0 from Receive.
type Stream interface {
	Receive(p []byte) (int, error)
	Send(p []byte) (int, error)
}

// Link drives the expansion protocol over a single Stream: heartbeats,
// baud rate negotiation, RPC session control and acknowledged data
// transfer. A Link is not safe for concurrent use; run one goroutine per
// link, matching the synchronous design of the codec underneath.
type Link struct {
	stream      Stream
	onHeartbeat func()
	ackAttempts int
}

const defaultAckAttempts = 3

// NewLink returns a Link over stream with the given options applied.
func NewLink(stream Stream, opts ...Option) (*Link, error) {
	link := &Link{
		stream:      stream,
		ackAttempts: defaultAckAttempts,
	}
	for _, opt := range opts {
		if err := opt(link); err != nil {
			return nil, err
		}
	}
	return link, nil
}

// SendFrame encodes and sends f as-is.
func (l *Link) SendFrame(f *Frame) error {
	return Encode(f, l.stream.Send)
}

// ReceiveFrame receives the next frame from the peer into f.
func (l *Link) ReceiveFrame(f *Frame) error {
	return Decode(f, l.stream.Receive)
}

// SendHeartbeat sends a liveness signal. No acknowledgement is expected.
func (l *Link) SendHeartbeat() error {
	f := HeartbeatFrame()
	return l.SendFrame(&f)
}

// SendStatus reports code to the peer, acknowledging its last frame.
func (l *Link) SendStatus(code StatusError) error {
	f := StatusFrame(code)
	return l.SendFrame(&f)
}

// RequestBaudRate asks the peer to switch the link to baud. On success
// the caller must reconfigure the underlying transport to the new rate
// before the next frame exchange. A peer that cannot run at the requested
// rate answers with ErrBaudRateUnsupported and the link stays as it was.
func (l *Link) RequestBaudRate(baud uint32) error {
	f := BaudRateFrame(baud)
	if err := l.SendFrame(&f); err != nil {
		return fmt.Errorf("baud rate request: %w", err)
	}

	code, err := l.expectStatus()
	if err != nil {
		return fmt.Errorf("baud rate request: %w", err)
	}
	switch code {
	case StatusErrorNone:
		return nil
	case StatusErrorBaudRate:
		return fmt.Errorf("baud rate request: %w: %d", ErrBaudRateUnsupported, baud)
	default:
		return fmt.Errorf("baud rate request: %w: code 0x%02X", ErrStatusError, byte(code))
	}
}

// StartRPC asks the peer to open an RPC session.
func (l *Link) StartRPC() error {
	return l.control(ControlCommandStartRPC)
}

// StopRPC asks the peer to close the open RPC session.
func (l *Link) StopRPC() error {
	return l.control(ControlCommandStopRPC)
}

func (l *Link) control(cmd ControlCommand) error {
	f := ControlFrame(cmd)
	if err := l.SendFrame(&f); err != nil {
		return fmt.Errorf("control command 0x%02X: %w", byte(cmd), err)
	}

	code, err := l.expectStatus()
	if err != nil {
		return fmt.Errorf("control command 0x%02X: %w", byte(cmd), err)
	}
	if code != StatusErrorNone {
		return fmt.Errorf("control command 0x%02X: %w: code 0x%02X", byte(cmd), ErrStatusError, byte(code))
	}
	return nil
}

// SendData transmits payload as a sequence of acknowledged Data frames,
// chunked to MaxDataSize bytes each. An empty payload still produces one
// empty Data frame.
func (l *Link) SendData(payload []byte) error {
	for {
		n := len(payload)
		if n > MaxDataSize {
			n = MaxDataSize
		}

		f, err := DataFrame(payload[:n])
		if err != nil {
			return fmt.Errorf("send data: %w", err)
		}
		if err := l.SendFrame(&f); err != nil {
			return fmt.Errorf("send data: %w", err)
		}

		code, err := l.expectStatus()
		if err != nil {
			return fmt.Errorf("send data: %w", err)
		}
		if code != StatusErrorNone {
			return fmt.Errorf("send data: %w: code 0x%02X", ErrStatusError, byte(code))
		}

		payload = payload[n:]
		if len(payload) == 0 {
			return nil
		}
	}
}

// expectStatus reads frames until a Status arrives. Heartbeats may
// legitimately interleave with acknowledgements, so up to ackAttempts
// frames are examined before giving up; any other frame type in that
// window is a protocol violation.
func (l *Link) expectStatus() (StatusError, error) {
	var f Frame
	for attempt := 0; attempt < l.ackAttempts; attempt++ {
		if err := l.ReceiveFrame(&f); err != nil {
			return 0, err
		}

		switch f.Type {
		case FrameTypeStatus:
			return f.Error, nil
		case FrameTypeHeartbeat:
			if l.onHeartbeat != nil {
				l.onHeartbeat()
			}
		default:
			return 0, fmt.Errorf("%w: unexpected %s frame", ErrNoStatus, f.Type)
		}
	}
	return 0, fmt.Errorf("%w: gave up after %d frames", ErrNoStatus, l.ackAttempts)
}
