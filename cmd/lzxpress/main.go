// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package main

import (
	"os"

	"github.com/woozymasta/lzxpress/internal/command"

	"github.com/nuclio/errors"
)

func main() {
	err := command.NewRootCommandeer().Execute()
	if err != nil {
		errors.PrintErrorStack(os.Stderr, err, 5)
	}

	os.Exit(command.ExitCode(err))
}
