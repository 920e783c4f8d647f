// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package command

import (
	stderrors "errors"

	"github.com/woozymasta/lzxpress"

	"github.com/nuclio/errors"
)

// Process exit codes
const (
	ExitCodeSuccess   = 0
	ExitCodeFailure   = 1
	ExitCodeCorrupted = 2
	ExitCodeMemLimit  = 3
)

// IsCause reports whether target is found at any level of err's cause chain
func IsCause(err error, target error) bool {
	for current := err; current != nil; {
		if stderrors.Is(current, target) {
			return true
		}

		next := errors.Cause(current)
		if next == current {
			break
		}

		current = next
	}

	return false
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case IsCause(err, lzxpress.ErrCorruptedData):
		return ExitCodeCorrupted
	case IsCause(err, lzxpress.ErrMemLimit):
		return ExitCodeMemLimit
	default:
		return ExitCodeFailure
	}
}
