/*
 Warden, a control plane for hosting and supervising per-tenant game servers.
 Copyright (C) 2025 The Warden Authors

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package instance

import (
	"strings"
	"testing"

	apierrs "github.com/craftops/warden/controlplane/errors"
	"github.com/craftops/warden/internal/ptr"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{
			name:  "simple name",
			input: "survival-main",
			valid: true,
		},
		{
			name:  "minimum length",
			input: "abc",
			valid: true,
		},
		{
			name:  "digits only",
			input: "123",
			valid: true,
		},
		{
			name:  "maximum length",
			input: strings.Repeat("a", 32),
			valid: true,
		},
		{
			name:  "too short",
			input: "ab",
			valid: false,
		},
		{
			name:  "too long",
			input: strings.Repeat("a", 33),
			valid: false,
		},
		{
			name:  "uppercase",
			input: "Survival",
			valid: false,
		},
		{
			name:  "leading hyphen",
			input: "-survival",
			valid: false,
		},
		{
			name:  "trailing hyphen",
			input: "survival-",
			valid: false,
		},
		{
			name:  "underscore",
			input: "survival_main",
			valid: false,
		},
		{
			name:  "empty",
			input: "",
			valid: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, ValidName(tt.input))
		})
	}
}

func TestValidatePorts(t *testing.T) {
	claimed := Instance{
		ServerPort: 25565,
		RconPort:   25575,
		VoicePort:  ptr.Pointer(uint16(24454)),
		BridgePort: ptr.Pointer(uint16(19132)),
	}

	tests := []struct {
		name string
		req  NewInstance
		kind string
	}{
		{
			name: "all free",
			req: NewInstance{
				ServerPort: 25566,
				RconPort:   25576,
				BridgePort: ptr.Pointer(uint16(19133)),
			},
		},
		{
			name: "server port taken",
			req: NewInstance{
				ServerPort: 25565,
				RconPort:   25576,
			},
			kind: "server",
		},
		{
			name: "rcon port taken",
			req: NewInstance{
				ServerPort: 25566,
				RconPort:   25575,
			},
			kind: "rcon",
		},
		{
			name: "bridge port taken",
			req: NewInstance{
				ServerPort: 25566,
				RconPort:   25576,
				BridgePort: ptr.Pointer(uint16(19132)),
			},
			kind: "bridge",
		},
		{
			name: "voice port collision is fine",
			req: NewInstance{
				ServerPort: 25566,
				RconPort:   25576,
				VoicePort:  ptr.Pointer(uint16(24454)),
			},
		},
		{
			name: "absent bridge port never conflicts",
			req: NewInstance{
				ServerPort: 25566,
				RconPort:   25576,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used := NewUsedPorts()
			used.Claim(claimed)

			err := validatePorts(used, tt.req)

			if tt.kind == "" {
				require.NoError(t, err)
				return
			}

			var e apierrs.Error
			require.ErrorAs(t, err, &e)
			require.Equal(t, apierrs.CodeAlreadyExists, e.Code)
			require.Equal(t, tt.kind, e.Meta["port_kind"])
		})
	}
}
