// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package command

import (
	"io"
	"os"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

// streamOptions holds the input/output flags shared by all subcommands.
// An empty path or "-" selects the command's stdin/stdout.
type streamOptions struct {
	inputPath  string
	outputPath string
}

func (so *streamOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&so.inputPath, "input", "i", "", "Input file (default: stdin)")
	cmd.Flags().StringVarP(&so.outputPath, "output", "o", "", "Output file (default: stdout)")
}

func (so *streamOptions) openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	if so.inputPath == "" || so.inputPath == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	file, err := os.Open(so.inputPath)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open input file %s", so.inputPath)
	}

	return file, nil
}

func (so *streamOptions) readInput(cmd *cobra.Command) ([]byte, error) {
	input, err := so.openInput(cmd)
	if err != nil {
		return nil, err
	}
	defer input.Close() // nolint: errcheck

	data, err := io.ReadAll(input)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read input")
	}

	return data, nil
}

func (so *streamOptions) writeOutput(cmd *cobra.Command, data []byte) error {
	if so.outputPath == "" || so.outputPath == "-" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return errors.Wrap(err, "Failed to write output")
		}

		return nil
	}

	if err := os.WriteFile(so.outputPath, data, 0o644); err != nil {
		return errors.Wrapf(err, "Failed to write output file %s", so.outputPath)
	}

	return nil
}
