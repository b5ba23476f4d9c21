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

package uart

import (
	"testing"

	expansion "github.com/ZaparooProject/go-expansion"
)

// TestPortCreation verifies basic port properties without hardware
func TestPortCreation(t *testing.T) {
	t.Parallel()

	testPortName := "/dev/ttyUSB0"
	port := &Port{
		portName: testPortName,
		baudRate: DefaultBaudRate,
	}

	if port.Name() != testPortName {
		t.Errorf("Expected port name %s, got %s", testPortName, port.Name())
	}

	if port.BaudRate() != DefaultBaudRate {
		t.Errorf("Expected baud rate %d, got %d", DefaultBaudRate, port.BaudRate())
	}

	// An unopened port must not report as connected
	if port.IsConnected() {
		t.Error("Expected IsConnected() to return false for unopened port")
	}
}

// TestPortImplementsStream pins the Port to the Stream contract at
// compile time
func TestPortImplementsStream(t *testing.T) {
	t.Parallel()

	var _ expansion.Stream = (*Port)(nil)
}

func TestCloseUnopenedPort(t *testing.T) {
	t.Parallel()

	port := &Port{portName: "/dev/null"}
	if err := port.Close(); err != nil {
		t.Errorf("Close on unopened port returned error: %v", err)
	}
}

func TestOpenNonexistentPort(t *testing.T) {
	t.Parallel()

	if _, err := New("/dev/nonexistent-expansion-port"); err == nil {
		t.Error("Expected error opening nonexistent port")
	}
}
