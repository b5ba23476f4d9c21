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

import "errors"

// Frame codec errors.
var (
	// ErrUndecidableFrame reports a received type tag outside the known
	// set. The total size of such a frame cannot be determined, so the
	// decode in progress can never complete.
	ErrUndecidableFrame = errors.New("frame type undecidable")

	// ErrUnencodableFrame reports an attempt to encode a frame whose type
	// is outside the known set. Distinct from ErrUndecidableFrame: one is
	// a receive-side verdict, the other a send-side one.
	ErrUnencodableFrame = errors.New("frame type unencodable")

	// ErrStreamExhausted reports a receive callback that returned no bytes
	// mid-frame, typically a transport timeout or a closed link.
	ErrStreamExhausted = errors.New("stream exhausted")

	// ErrReceiveOverrun reports a receive callback claiming to have
	// written more bytes than were requested.
	ErrReceiveOverrun = errors.New("receive overrun")

	// ErrShortSend reports a send callback that consumed fewer bytes than
	// the full encoded frame.
	ErrShortSend = errors.New("short send")

	// ErrDataTooLarge reports a payload above MaxDataSize.
	ErrDataTooLarge = errors.New("data exceeds maximum payload size")
)

// Session errors.
var (
	// ErrBaudRateUnsupported reports that the host rejected a requested
	// baud rate.
	ErrBaudRateUnsupported = errors.New("baud rate not supported")

	// ErrStatusError reports a non-zero status code from the host.
	ErrStatusError = errors.New("status error reported")

	// ErrNoStatus reports that no status acknowledgement arrived within
	// the configured number of attempts.
	ErrNoStatus = errors.New("no status acknowledgement")

	// ErrInvalidParameter reports an invalid configuration value.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// IsRetryable reports whether an operation that failed with err may
// succeed if the transport layer retries it. Malformed frames and invalid
// parameters are permanent; transient transport conditions are not.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStreamExhausted) ||
		errors.Is(err, ErrShortSend) ||
		errors.Is(err, ErrNoStatus)
}
