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

package session

import "time"

// client bound and server bound message types of the viewer channel.
const (
	TypeAuthenticate = "authenticate"
	TypeSubscribe    = "subscribe"
	TypeUnsubscribe  = "unsubscribe"
	TypeRunCommand   = "runCommand"
	TypePing         = "ping"

	TypeAuthResult    = "authResult"
	TypeLogLine       = "logLine"
	TypeCommandResult = "commandResult"
	TypeError         = "error"
	TypePong          = "pong"
)

type ClientMessage struct {
	Type       string `json:"type"`
	Token      string `json:"token,omitempty"`
	InstanceID string `json:"instanceId,omitempty"`
	Command    string `json:"command,omitempty"`
}

type ServerMessage struct {
	Type       string     `json:"type"`
	InstanceID string     `json:"instanceId,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
	Text       string     `json:"text,omitempty"`
	OK         *bool      `json:"ok,omitempty"`
	Code       string     `json:"code,omitempty"`
	Message    string     `json:"message,omitempty"`
}

func errorMessage(code string, message string) ServerMessage {
	return ServerMessage{
		Type:    TypeError,
		Code:    code,
		Message: message,
	}
}
