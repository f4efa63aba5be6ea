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

package helpers

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AppID keys the single-instance lock.
var AppID = uuid.MustParse("f082c8ab-df27-4daf-9d09-48ff15ef0204")

// ErrAlreadyRunning is returned when another process holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// SingleInstance guards against a second copy of the program. The lock is
// attempted once and, when acquired, held until Release.
type SingleInstance struct {
	lock *osLock
	id   uuid.UUID
	once sync.Once
	held bool
}

func NewSingleInstance(id uuid.UUID) *SingleInstance {
	return &SingleInstance{id: id}
}

// TryLock reports whether this process owns the lock. Only the first call
// touches the OS; later calls return the same answer.
func (s *SingleInstance) TryLock() bool {
	s.once.Do(func() {
		lock, err := acquireOSLock(s.id)
		if err != nil {
			if !errors.Is(err, ErrAlreadyRunning) {
				log.Error().Err(err).Msg("failed to acquire single instance lock")
			}
			return
		}
		s.lock = lock
		s.held = true
	})
	return s.held
}

// Release drops the lock if it is held.
func (s *SingleInstance) Release() error {
	if s.lock == nil {
		return nil
	}
	err := s.lock.release()
	s.lock = nil
	return err
}
