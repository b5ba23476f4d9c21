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

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		name string
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "stream exhausted retryable",
			err:  ErrStreamExhausted,
			want: true,
		},
		{
			name: "short send retryable",
			err:  ErrShortSend,
			want: true,
		},
		{
			name: "no status retryable",
			err:  ErrNoStatus,
			want: true,
		},
		{
			name: "wrapped retryable error",
			err:  fmt.Errorf("decode frame: %w", ErrStreamExhausted),
			want: true,
		},
		{
			name: "undecidable frame not retryable",
			err:  ErrUndecidableFrame,
			want: false,
		},
		{
			name: "unencodable frame not retryable",
			err:  ErrUnencodableFrame,
			want: false,
		},
		{
			name: "data too large not retryable",
			err:  ErrDataTooLarge,
			want: false,
		},
		{
			name: "invalid parameter not retryable",
			err:  ErrInvalidParameter,
			want: false,
		},
		{
			name: "unrelated error not retryable",
			err:  errors.New("something else"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := IsRetryable(tt.err)
			if got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnknownTagVerdictsAreDistinct(t *testing.T) {
	t.Parallel()

	// The receive-side and send-side verdicts for an unknown tag must
	// never satisfy each other.
	if errors.Is(ErrUndecidableFrame, ErrUnencodableFrame) {
		t.Error("ErrUndecidableFrame must not match ErrUnencodableFrame")
	}
	if errors.Is(ErrUnencodableFrame, ErrUndecidableFrame) {
		t.Error("ErrUnencodableFrame must not match ErrUndecidableFrame")
	}
}
