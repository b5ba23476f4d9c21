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

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type config struct {
	Device      string
	Timeout     time.Duration
	AckAttempts int
}

type fileConfig struct {
	Device      string `toml:"device"`
	Timeout     string `toml:"timeout"`
	AckAttempts int    `toml:"ack_attempts"`
}

func defaultConfig() config {
	return config{
		Timeout:     500 * time.Millisecond,
		AckAttempts: 3,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("device") {
		cfg.Device = strings.TrimSpace(raw.Device)
	}

	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}

	if meta.IsDefined("ack_attempts") {
		if raw.AckAttempts < 1 {
			return config{}, fmt.Errorf("ack_attempts must be at least 1, got %d", raw.AckAttempts)
		}
		cfg.AckAttempts = raw.AckAttempts
	}

	return cfg, nil
}
