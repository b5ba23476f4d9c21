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

/*
Package expansion implements the framing protocol spoken between a host
device and an attached expansion module over a serial link.

The protocol exchanges five frame kinds, each a one-byte type tag followed
by a type-specific content region:

	tag 1  Heartbeat  no content
	tag 2  Status     1 byte error code
	tag 3  BaudRate   4 bytes requested rate, little-endian
	tag 4  Control    1 byte command (start/stop RPC)
	tag 5  Data       1 byte length (max 64), then that many payload bytes

The core of the package is the allocation-free frame codec: EncodedSize
computes the wire size of a populated frame, RemainingSize computes how
many more bytes a partially received frame still needs (re-evaluated after
every read, since a Data frame's size is only knowable once its length
byte arrives), and Decode/Encode drive caller-supplied byte source/sink
callbacks to assemble or emit exactly one frame. The codec owns no
buffers, spawns no goroutines and never retries; transports decide how
reads block, time out or get retried.

Basic usage with a serial port:

	port, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer port.Close()

	link, err := expansion.NewLink(port)
	if err != nil {
	    log.Fatal(err)
	}

	if err := link.SendHeartbeat(); err != nil {
	    log.Fatal(err)
	}

	// Negotiate a faster link, then reconfigure the port to match.
	if err := link.RequestBaudRate(230400); err == nil {
	    _ = port.SetBaudRate(230400)
	}

	if err := link.StartRPC(); err != nil {
	    log.Fatal(err)
	}
	if err := link.SendData([]byte("hello")); err != nil {
	    log.Fatal(err)
	}

The codec also works over plain io.Reader/io.Writer values via DecodeFrom
and EncodeTo, which is how the tests round-trip frames through in-memory
buffers.

Error Handling:

All failures are reported synchronously and can be inspected:

	if errors.Is(err, expansion.ErrUndecidableFrame) {
	    // peer sent an unknown frame type
	}

Two distinct verdicts exist for unknown frame types: ErrUndecidableFrame
from the receive side (the frame's size cannot be determined) and
ErrUnencodableFrame from the send side (the frame cannot be serialized).
Callers should not conflate them.

Thread Safety:

Frame operations are not thread-safe. Decode and Encode block the calling
goroutine for the duration of their callback loop and share no state
beyond the caller-supplied frame; drive each link from a single goroutine.
*/
package expansion
