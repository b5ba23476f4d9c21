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

// Option is a functional option for configuring a Link.
type Option func(*Link) error

// WithAckAttempts sets how many frames may be read while waiting for a
// status acknowledgement before giving up. Heartbeats interleaved with an
// acknowledgement each consume one attempt.
func WithAckAttempts(n int) Option {
	return func(l *Link) error {
		if n < 1 {
			return fmt.Errorf("%w: ack attempts must be at least 1, got %d", ErrInvalidParameter, n)
		}
		l.ackAttempts = n
		return nil
	}
}

// WithOnHeartbeat sets a callback invoked for every heartbeat frame
// observed while waiting for a status acknowledgement.
func WithOnHeartbeat(fn func()) Option {
	return func(l *Link) error {
		l.onHeartbeat = fn
		return nil
	}
}
