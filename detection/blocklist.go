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

// Package detection filters candidate serial ports before the expansion
// link is probed on them.
package detection

import "strings"

// DefaultBlocklist returns USB devices that must never be probed with
// expansion frames. Some serial devices treat unsolicited bytes as
// commands; probing them can wedge the device.
// Format: VID:PID in hexadecimal, case-insensitive.
func DefaultBlocklist() []string {
	return []string{
		// Add problematic devices here as they are discovered, e.g.
		// "0403:6001", // adapter that latches up on a heartbeat probe
	}
}

// IsBlocked checks whether a VID:PID descriptor appears in blocklist.
func IsBlocked(vidpid string, blocklist []string) bool {
	vidpid = strings.ToUpper(strings.TrimSpace(vidpid))
	for _, blocked := range blocklist {
		if vidpid == strings.ToUpper(strings.TrimSpace(blocked)) {
			return true
		}
	}
	return false
}

// ParseVIDPID normalizes a USB descriptor to the canonical VID:PID form.
// Accepted inputs: "1234:5678", "VID:1234 PID:5678", "vid=1234 pid=5678".
// Returns "" when no identifier pair can be extracted.
func ParseVIDPID(descriptor string) string {
	descriptor = strings.ToUpper(descriptor)

	vid := extractHexAfter(descriptor, "VID:", "VID=", "VENDOR=")
	pid := extractHexAfter(descriptor, "PID:", "PID=", "PRODUCT=")
	if vid != "" && pid != "" {
		return vid + ":" + pid
	}

	// Bare VID:PID form.
	if parts := strings.Split(descriptor, ":"); len(parts) == 2 && isHex(parts[0]) && isHex(parts[1]) {
		return descriptor
	}
	return ""
}

// extractHexAfter returns the hex run following the first matching marker.
func extractHexAfter(s string, markers ...string) string {
	for _, marker := range markers {
		idx := strings.Index(s, marker)
		if idx < 0 {
			continue
		}
		return leadingHex(s[idx+len(marker):])
	}
	return ""
}

func leadingHex(s string) string {
	end := 0
	for end < len(s) && isHexByte(s[end]) {
		end++
	}
	return s[:end]
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexByte(s[i]) {
			return false
		}
	}
	return true
}

func isHexByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}
