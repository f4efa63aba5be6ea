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

// Package failure defines the error taxonomy shown to the user. Every failure
// is one of three kinds: an I/O failure carrying the OS error category, a
// JSON encode/decode failure carrying a message, or a missing parent
// directory when deriving a path.
package failure

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

type Kind int

const (
	KindIO Kind = iota
	KindJSON
	KindNoParent
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindJSON:
		return "json"
	case KindNoParent:
		return "no_parent"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IOCategory is the OS-level class of an I/O failure.
type IOCategory string

const (
	NotFound         IOCategory = "entity not found"
	PermissionDenied IOCategory = "permission denied"
	AlreadyExists    IOCategory = "entity already exists"
	InvalidInput     IOCategory = "invalid input parameter"
	Other            IOCategory = "other error"
)

// Failure is a classified error. The zero value is not useful, use the
// constructors.
type Failure struct {
	Err     error
	Message string
	Path    string
	IO      IOCategory
	Kind    Kind
}

func (f *Failure) Error() string {
	switch f.Kind {
	case KindIO:
		if f.Path != "" {
			return fmt.Sprintf("%s: %s", f.IO, f.Path)
		}
		return string(f.IO)
	case KindJSON:
		return f.Message
	case KindNoParent:
		if f.Path != "" {
			return "no parent directory: " + f.Path
		}
		return "no parent directory"
	default:
		return "unknown failure"
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// FromIO classifies an OS error. Returns nil for a nil error and passes an
// existing Failure through untouched.
func FromIO(err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	path := ""
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		path = pathErr.Path
	}

	return &Failure{
		Kind: KindIO,
		IO:   categorize(err),
		Path: path,
		Err:  err,
	}
}

// FromJSON wraps an encode or decode error.
func FromJSON(err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{
		Kind:    KindJSON,
		Message: err.Error(),
		Err:     err,
	}
}

// NoParent reports that path has no parent directory.
func NoParent(path string) error {
	return &Failure{
		Kind: KindNoParent,
		Path: path,
	}
}

// As extracts the Failure from err, classifying unknown errors as I/O.
func As(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	if errors.As(FromIO(err), &f) {
		return f, true
	}
	return nil, false
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var f *Failure
	if !errors.As(err, &f) {
		return false
	}
	return f.Kind == kind
}

func categorize(err error) IOCategory {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, exec.ErrNotFound):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, fs.ErrInvalid):
		return InvalidInput
	default:
		return Other
	}
}
