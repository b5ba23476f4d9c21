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

//go:build darwin

package uart

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
)

var (
	calloutRegex = regexp.MustCompile(`"IOCalloutDevice"\s*=\s*"([^"]+)"`)
	vendorRegex  = regexp.MustCompile(`"idVendor"\s*=\s*(\d+)`)
	productRegex = regexp.MustCompile(`"idProduct"\s*=\s*(\d+)`)
	nameRegex    = regexp.MustCompile(`"USB Product Name"\s*=\s*"([^"]+)"`)
)

// getSerialPorts returns available serial ports on macOS by querying the
// IOKit registry for serial BSD clients.
func getSerialPorts(ctx context.Context) ([]Port, error) {
	cmd := exec.CommandContext(ctx, "ioreg", "-r", "-c", "IOSerialBSDClient", "-l")
	output, err := cmd.Output()
	if err != nil {
		return globFallback()
	}

	var ports []Port
	for _, device := range splitDevices(string(output)) {
		match := calloutRegex.FindStringSubmatch(device)
		if match == nil {
			continue
		}
		path := match[1]

		port := Port{
			Path:   path,
			Name:   filepath.Base(path),
			VIDPID: ioregVIDPID(device),
		}
		if nameMatch := nameRegex.FindStringSubmatch(device); nameMatch != nil {
			port.Product = nameMatch[1]
		}
		ports = append(ports, port)
	}

	return ports, nil
}

// globFallback lists callout devices directly when ioreg is unavailable.
func globFallback() ([]Port, error) {
	matches, err := filepath.Glob("/dev/cu.*")
	if err != nil {
		return nil, err
	}

	ports := make([]Port, 0, len(matches))
	for _, path := range matches {
		ports = append(ports, Port{Path: path, Name: filepath.Base(path)})
	}
	return ports, nil
}

func splitDevices(output string) []string {
	return regexp.MustCompile(`\+-o `).Split(output, -1)
}

// ioregVIDPID formats the decimal idVendor/idProduct pair from an ioreg
// entry as hexadecimal VID:PID.
func ioregVIDPID(device string) string {
	vidMatch := vendorRegex.FindStringSubmatch(device)
	pidMatch := productRegex.FindStringSubmatch(device)
	if vidMatch == nil || pidMatch == nil {
		return ""
	}

	var vid, pid int
	if _, err := fmt.Sscanf(vidMatch[1], "%d", &vid); err != nil {
		return ""
	}
	if _, err := fmt.Sscanf(pidMatch[1], "%d", &pid); err != nil {
		return ""
	}
	return fmt.Sprintf("%04X:%04X", vid, pid)
}
