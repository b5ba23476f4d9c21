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

// Package uart discovers serial ports that may carry an expansion link.
package uart

import (
	"context"
	"fmt"

	"github.com/ZaparooProject/go-expansion/detection"
)

// Port describes a candidate serial port.
type Port struct {
	// Path is the device path to open, e.g. /dev/ttyUSB0 or COM3.
	Path string
	// Name is a short display name for the port.
	Name string
	// VIDPID identifies the USB device as VID:PID, when known.
	VIDPID string
	// Product is the USB product string, when known.
	Product string
}

// Ports returns candidate serial ports for expansion link probing, in
// platform enumeration order, with blocklisted devices filtered out.
func Ports(ctx context.Context) ([]Port, error) {
	ports, err := getSerialPorts(ctx)
	if err != nil {
		return nil, fmt.Errorf("serial port enumeration: %w", err)
	}

	blocklist := detection.DefaultBlocklist()
	candidates := make([]Port, 0, len(ports))
	for _, port := range ports {
		if port.VIDPID != "" && detection.IsBlocked(port.VIDPID, blocklist) {
			continue
		}
		candidates = append(candidates, port)
	}
	return candidates, nil
}
