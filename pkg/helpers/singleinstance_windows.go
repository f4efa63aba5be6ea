// Aethon
// Copyright (c) 2026 The Aethon Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Aethon.
//
// Aethon is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aethon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aethon.  If not, see <http://www.gnu.org/licenses/>.

//go:build windows

package helpers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sys/windows"
)

type osLock struct {
	handle windows.Handle
}

func acquireOSLock(id uuid.UUID) (*osLock, error) {
	name, err := windows.UTF16PtrFromString(`Local\` + AppName + "-" + id.String())
	if err != nil {
		return nil, fmt.Errorf("invalid mutex name: %w", err)
	}

	handle, err := windows.CreateMutex(nil, false, name)
	if err != nil {
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			if handle != 0 {
				_ = windows.CloseHandle(handle)
			}
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to create mutex: %w", err)
	}

	return &osLock{handle: handle}, nil
}

func (l *osLock) release() error {
	if err := windows.CloseHandle(l.handle); err != nil {
		return fmt.Errorf("failed to close mutex: %w", err)
	}
	return nil
}
