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

// Package uart provides a serial port Stream for the expansion protocol
package uart

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the rate every expansion link starts at before
	// negotiation.
	DefaultBaudRate = 9600

	defaultTimeout = 200 * time.Millisecond
)

// Port implements expansion.Stream over a serial port.
type Port struct {
	port     serial.Port
	portName string
	baudRate int
	timeout  time.Duration
}

// New opens the serial port at path at the protocol's initial baud rate,
// 8 data bits, no parity, one stop bit.
func New(path string) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: DefaultBaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}

	p := &Port{
		port:     port,
		portName: path,
		baudRate: DefaultBaudRate,
		timeout:  defaultTimeout,
	}

	if err := port.SetReadTimeout(p.timeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", path, err)
	}

	return p, nil
}

// Receive fills buf with whatever arrives within the read timeout. A
// timeout with no data returns 0, which the frame codec interprets as
// stream exhaustion and unwinds; callers wanting a longer wait raise the
// timeout via SetTimeout rather than looping here.
func (p *Port) Receive(buf []byte) (int, error) {
	n, err := p.port.Read(buf)
	if err != nil {
		return n, fmt.Errorf("serial read on %s: %w", p.portName, err)
	}
	return n, nil
}

// Send writes buf to the port and returns the count consumed.
func (p *Port) Send(buf []byte) (int, error) {
	n, err := p.port.Write(buf)
	if err != nil {
		return n, fmt.Errorf("serial write on %s: %w", p.portName, err)
	}
	return n, nil
}

// SetBaudRate reconfigures the port speed. Call only after the peer has
// acknowledged the corresponding baud rate request, otherwise the two
// ends of the link disagree and every following frame is garbage.
func (p *Port) SetBaudRate(baudRate int) error {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	if err := p.port.SetMode(mode); err != nil {
		return fmt.Errorf("failed to set baud rate %d on %s: %w", baudRate, p.portName, err)
	}
	p.baudRate = baudRate
	return nil
}

// SetTimeout sets how long Receive waits for the first byte.
func (p *Port) SetTimeout(timeout time.Duration) error {
	if err := p.port.SetReadTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set read timeout on %s: %w", p.portName, err)
	}
	p.timeout = timeout
	return nil
}

// Close closes the serial port.
func (p *Port) Close() error {
	if p.port == nil {
		return nil
	}
	if err := p.port.Close(); err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", p.portName, err)
	}
	p.port = nil
	return nil
}

// IsConnected returns true if the port is open.
func (p *Port) IsConnected() bool {
	return p.port != nil
}

// Name returns the port path.
func (p *Port) Name() string {
	return p.portName
}

// BaudRate returns the currently configured rate.
func (p *Port) BaudRate() int {
	return p.baudRate
}
