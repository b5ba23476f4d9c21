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

// expctl exercises an expansion link from the host side: ping it with a
// heartbeat, negotiate a faster baud rate and push data through an RPC
// session.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	expansion "github.com/ZaparooProject/go-expansion"
	uartdetect "github.com/ZaparooProject/go-expansion/detection/uart"
	"github.com/ZaparooProject/go-expansion/transport/uart"
	"github.com/rs/zerolog"
)

type flags struct {
	device     *string
	configPath *string
	send       *string
	baud       *uint
	timeout    *time.Duration
	ping       *bool
	debug      *bool
}

func parseFlags() *flags {
	f := &flags{
		device: flag.String("device", "",
			"Serial device path (e.g., /dev/ttyUSB0 or COM3). Leave empty for auto-detection."),
		configPath: flag.String("config", "", "Path to a TOML config file"),
		ping:       flag.Bool("ping", false, "Send a heartbeat frame"),
		baud:       flag.Uint("baud", 0, "Negotiate the given baud rate and switch the port to it"),
		send:       flag.String("send", "", "Open an RPC session and send the given string as data"),
		timeout:    flag.Duration("timeout", 0, "Read timeout per frame (overrides config)"),
		debug:      flag.Bool("debug", false, "Enable debug output"),
	}
	flag.Parse()
	return f
}

func newLogger(debug bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "expctl").Logger()
	if !debug {
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "expctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	f := parseFlags()
	logger := newLogger(*f.debug)

	cfg := defaultConfig()
	if *f.configPath != "" {
		loaded, err := loadConfig(*f.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *f.device != "" {
		cfg.Device = *f.device
	}
	if *f.timeout > 0 {
		cfg.Timeout = *f.timeout
	}

	ctx := context.Background()

	devicePath := cfg.Device
	if devicePath == "" {
		path, err := autoDetect(ctx, logger)
		if err != nil {
			return err
		}
		devicePath = path
	}

	port, err := uart.New(devicePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := port.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close port")
		}
	}()
	if err := port.SetTimeout(cfg.Timeout); err != nil {
		return err
	}
	logger.Info().Str("device", devicePath).Int("baud", port.BaudRate()).Msg("port open")

	link, err := expansion.NewLink(port,
		expansion.WithAckAttempts(cfg.AckAttempts),
		expansion.WithOnHeartbeat(func() {
			logger.Debug().Msg("heartbeat from peer")
		}),
	)
	if err != nil {
		return err
	}

	if *f.ping {
		if err := link.SendHeartbeat(); err != nil {
			return err
		}
		logger.Info().Msg("heartbeat sent")
	}

	if *f.baud > 0 {
		if err := negotiateBaud(link, port, uint32(*f.baud)); err != nil {
			return err
		}
		logger.Info().Uint("baud", *f.baud).Msg("baud rate switched")
	}

	if *f.send != "" {
		if err := sendData(link, []byte(*f.send)); err != nil {
			return err
		}
		logger.Info().Int("bytes", len(*f.send)).Msg("data acknowledged")
	}

	return nil
}

func autoDetect(ctx context.Context, logger zerolog.Logger) (string, error) {
	ports, err := uartdetect.Ports(ctx)
	if err != nil {
		return "", err
	}
	if len(ports) == 0 {
		return "", fmt.Errorf("no serial ports found; specify one with -device")
	}

	for _, port := range ports {
		logger.Debug().
			Str("path", port.Path).
			Str("vidpid", port.VIDPID).
			Str("product", port.Product).
			Msg("candidate port")
	}
	return ports[0].Path, nil
}

func negotiateBaud(link *expansion.Link, port *uart.Port, baud uint32) error {
	if err := link.RequestBaudRate(baud); err != nil {
		return err
	}
	return port.SetBaudRate(int(baud))
}

func sendData(link *expansion.Link, payload []byte) error {
	if err := link.StartRPC(); err != nil {
		return err
	}
	if err := link.SendData(payload); err != nil {
		// Still try to close the session before reporting.
		_ = link.StopRPC()
		return err
	}
	return link.StopRPC()
}
