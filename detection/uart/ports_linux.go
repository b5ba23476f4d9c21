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

//go:build linux

package uart

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// getSerialPorts returns available USB serial ports on Linux
func getSerialPorts(_ context.Context) ([]Port, error) {
	seen := make(map[string]bool)
	var ports []Port

	// /dev/serial/by-id gives stable names and encodes the product string
	byID, _ := filepath.Glob("/dev/serial/by-id/*")
	for _, link := range byID {
		path, err := filepath.EvalSymlinks(link)
		if err != nil {
			continue
		}
		if seen[path] {
			continue
		}
		seen[path] = true

		ports = append(ports, Port{
			Path:    path,
			Name:    filepath.Base(path),
			VIDPID:  sysfsVIDPID(path),
			Product: filepath.Base(link),
		})
	}

	// Fallback for systems without the by-id tree
	for _, pattern := range []string{"/dev/ttyUSB*", "/dev/ttyACM*"} {
		matches, _ := filepath.Glob(pattern)
		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true

			ports = append(ports, Port{
				Path:   path,
				Name:   filepath.Base(path),
				VIDPID: sysfsVIDPID(path),
			})
		}
	}

	return ports, nil
}

// sysfsVIDPID reads the USB vendor/product IDs for a tty device from
// sysfs. Returns "" when the device is not USB-backed.
func sysfsVIDPID(devPath string) string {
	name := filepath.Base(devPath)

	// The idVendor/idProduct files live on the USB device ancestor of
	// the tty node.
	base := filepath.Join("/sys/class/tty", name, "device")
	for depth := 0; depth < 4; depth++ {
		vid, errV := os.ReadFile(filepath.Join(base, "idVendor"))
		pid, errP := os.ReadFile(filepath.Join(base, "idProduct"))
		if errV == nil && errP == nil {
			return strings.ToUpper(strings.TrimSpace(string(vid))) + ":" +
				strings.ToUpper(strings.TrimSpace(string(pid)))
		}
		base = filepath.Join(base, "..")
	}
	return ""
}
