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
	"errors"
	"fmt"
	"io"
)

// ReceiveFunc reads up to len(p) bytes from the underlying byte source
// into p and returns the count actually written. Returning 0 with a nil
// error signals that no more data is available; the decode loop treats
// this as exhaustion rather than spinning. Short reads are normal and are
// accumulated across calls.
type ReceiveFunc func(p []byte) (int, error)

// SendFunc writes p to the underlying byte sink and returns the count
// actually consumed. A count below len(p) fails the encode; retry policy
// belongs to the transport, not the codec.
type SendFunc func(p []byte) (int, error)

// EncodedSize returns the total wire size of a fully-populated frame,
// including the type tag. For Data frames the Size field must already be
// set and within MaxDataSize, otherwise ErrDataTooLarge. Fails with
// ErrUnencodableFrame when the type is outside the known set; no valid
// frame encodes to zero bytes.
func EncodedSize(f *Frame) (int, error) {
	switch f.Type {
	case FrameTypeHeartbeat:
		return headerSize, nil
	case FrameTypeStatus:
		return headerSize + statusSize, nil
	case FrameTypeBaudRate:
		return headerSize + baudSize, nil
	case FrameTypeControl:
		return headerSize + commandSize, nil
	case FrameTypeData:
		if f.Size > MaxDataSize {
			return 0, fmt.Errorf("%w: size %d", ErrDataTooLarge, f.Size)
		}
		return headerSize + dataSizeSize + int(f.Size), nil
	default:
		return 0, fmt.Errorf("%w: tag 0x%02X", ErrUnencodableFrame, byte(f.Type))
	}
}

// RemainingSize returns how many more bytes are needed before the frame
// prefix in buf is complete. received counts the valid bytes at the front
// of buf; a result of 0 means the frame is complete. Fails with
// ErrUndecidableFrame when the type tag is outside the known set and with
// ErrDataTooLarge when a Data frame declares a length above MaxDataSize.
//
// For Data frames the requirement is revealed in two phases: until the
// length byte has arrived only the length byte itself is required, and
// only then does the declared payload length become part of the answer.
// Callers must therefore re-evaluate after every partial read instead of
// caching the first result.
func RemainingSize(buf []byte, received int) (int, error) {
	if received < headerSize {
		return headerSize, nil
	}

	contentReceived := received - headerSize
	var contentSize int

	switch FrameType(buf[0]) {
	case FrameTypeHeartbeat:
		contentSize = 0
	case FrameTypeStatus:
		contentSize = statusSize
	case FrameTypeBaudRate:
		contentSize = baudSize
	case FrameTypeControl:
		contentSize = commandSize
	case FrameTypeData:
		if contentReceived < dataSizeSize {
			contentSize = dataSizeSize
		} else if length := buf[headerSize]; length > MaxDataSize {
			// A peer declaring more payload than the protocol allows can
			// never be satisfied within a MaxFrameSize buffer; reject it
			// here so the driver fails instead of overrunning.
			return 0, fmt.Errorf("%w: declared length %d, maximum %d",
				ErrDataTooLarge, length, MaxDataSize)
		} else {
			contentSize = dataSizeSize + int(length)
		}
	default:
		return 0, fmt.Errorf("%w: tag 0x%02X", ErrUndecidableFrame, buf[0])
	}

	if contentSize > contentReceived {
		return contentSize - contentReceived, nil
	}
	return 0, nil
}

// Decode receives one frame through recv and unmarshals it into f. The
// work buffer is a fixed MaxFrameSize array on the stack; recv is only
// ever handed the exact byte range the frame still requires, so a
// well-behaved source cannot overrun it. A source that reports more bytes
// than requested is rejected with ErrReceiveOverrun rather than trusted.
func Decode(f *Frame, recv ReceiveFunc) error {
	var buf [MaxFrameSize]byte
	received := 0

	for {
		remaining, err := RemainingSize(buf[:], received)
		if err != nil {
			return fmt.Errorf("decode frame: %w", err)
		}
		if remaining == 0 {
			f.unmarshal(buf[:received])
			return nil
		}

		n, err := recv(buf[received : received+remaining])
		if err != nil {
			return fmt.Errorf("decode frame: receive: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("decode frame: %w", ErrStreamExhausted)
		}
		if n > remaining {
			return fmt.Errorf("decode frame: %w: reported %d bytes, requested %d",
				ErrReceiveOverrun, n, remaining)
		}
		received += n
	}
}

// Encode marshals f and pushes its full wire form through send in a
// single call. Success requires send to consume exactly the encoded size;
// a partial send is a failure, never retried here.
func Encode(f *Frame, send SendFunc) error {
	size, err := EncodedSize(f)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	var buf [MaxFrameSize]byte
	f.marshal(buf[:])

	n, err := send(buf[:size])
	if err != nil {
		return fmt.Errorf("encode frame: send: %w", err)
	}
	if n != size {
		return fmt.Errorf("encode frame: %w: sent %d of %d bytes", ErrShortSend, n, size)
	}
	return nil
}

// DecodeFrom decodes one frame from r, adapting it to the ReceiveFunc
// contract: io.EOF surfaces as the zero-byte exhaustion signal.
func DecodeFrom(f *Frame, r io.Reader) error {
	return Decode(f, func(p []byte) (int, error) {
		n, err := r.Read(p)
		if n > 0 || errors.Is(err, io.EOF) {
			return n, nil
		}
		return n, err
	})
}

// EncodeTo encodes one frame to w.
func EncodeTo(f *Frame, w io.Writer) error {
	return Encode(f, w.Write)
}
