// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxpress

package command

import (
	"github.com/woozymasta/lzxpress"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type compressCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
	streamOptions  streamOptions
	maxOffset      int
}

func newCompressCommandeer(rootCommandeer *RootCommandeer) *compressCommandeer {
	commandeer := &compressCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress data into an LZXpress stream",
		Long: `Compress the input with the LZXpress (plain LZ77) format and write the stream
to the output. There is no LZNT1 compressor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			// initialize root
			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			return commandeer.compress(cmd)
		},
	}

	commandeer.streamOptions.addFlags(cmd)
	cmd.Flags().IntVar(&commandeer.maxOffset, "max-offset", 0, "Maximum match distance, 1-8192 (0 for the full window)")

	commandeer.cmd = cmd

	return commandeer
}

func (c *compressCommandeer) compress(cmd *cobra.Command) error {
	input, err := c.streamOptions.readInput(cmd)
	if err != nil {
		return errors.Wrap(err, "Failed to read data to compress")
	}

	compressed, err := lzxpress.Compress(input, &lzxpress.CompressOptions{MaxOffset: c.maxOffset})
	if err != nil {
		return errors.Wrap(err, "Failed to compress")
	}

	c.rootCommandeer.loggerInstance.DebugWith("Compressed",
		"inputSize", len(input),
		"outputSize", len(compressed),
		"ratio", ratio(len(compressed), len(input)),
		"maxOffset", c.maxOffset)

	return c.streamOptions.writeOutput(cmd, compressed)
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}

	return float64(numerator) / float64(denominator)
}
