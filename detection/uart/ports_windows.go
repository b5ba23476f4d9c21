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

//go:build windows

package uart

import (
	"context"
	"strings"

	"github.com/ZaparooProject/go-expansion/detection"
	"golang.org/x/sys/windows/registry"
)

// getSerialPorts returns available COM ports on Windows from the
// SERIALCOMM registry map. The value name encodes the originating device
// (e.g. \Device\USBSER000), the value data is the COM port name.
func getSerialPorts(_ context.Context) ([]Port, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`HARDWARE\DEVICEMAP\SERIALCOMM`, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			// No serial ports present at all
			return nil, nil
		}
		return nil, err
	}
	defer key.Close()

	values, err := key.ReadValueNames(-1)
	if err != nil {
		return nil, err
	}

	ports := make([]Port, 0, len(values))
	for _, value := range values {
		portName, _, err := key.GetStringValue(value)
		if err != nil {
			continue
		}

		ports = append(ports, Port{
			Path:   portName,
			Name:   portName,
			VIDPID: registryVIDPID(value),
		})
	}

	return ports, nil
}

// registryVIDPID digs a VID:PID out of a SERIALCOMM value name when the
// device identifier embeds one (USB CDC devices usually do).
func registryVIDPID(deviceName string) string {
	upper := strings.ToUpper(deviceName)
	idx := strings.Index(upper, "VID")
	if idx < 0 {
		return ""
	}
	return detection.ParseVIDPID(strings.NewReplacer("_", ":", "&", " ").Replace(upper[idx:]))
}
